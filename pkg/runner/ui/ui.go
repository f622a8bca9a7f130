// Package ui is the interactive terminal grid browser. It renders the
// shelf map, lets the operator walk cells with vim-style keys, and acts
// on the product under the cursor.
package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/scorta/pkg/app"
	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/store"
)

type UI struct {
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not browse, no service")
	}

	var watch <-chan store.Event
	if n.Service.Persistence != nil {
		if ch, err := n.Service.Persistence.Watch(ctx); err == nil {
			watch = ch
		}
	}

	p := tea.NewProgram(New(ctx, n.Service, watch), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type changedMsg struct{ key string }

// Model is the Bubble Tea state: a cursor over the grid plus a status
// line. All inventory state stays in the service; the model only reads.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	watch <-chan store.Event

	row    int
	col    int
	status string

	width  int
	height int
}

const normalHelp = "h/j/k/l move, p pick, r return, x shelve, u undo, q quit"

func New(ctx context.Context, svc *app.Service, watch <-chan store.Event) Model {
	return Model{
		svc:    svc,
		ctx:    ctx,
		watch:  watch,
		status: normalHelp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange re-arms after every store notification so writes from
// another process show up without any action here.
func (m Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return changedMsg{key: ev.Key}
	}
}

func (m Model) bounds() inventory.Bounds {
	return m.svc.Inventory.Grid().Bounds()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case changedMsg:
		if err := m.svc.Load(m.ctx); err != nil {
			m.status = err.Error()
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.bounds()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "h", "left":
		if m.col > 0 {
			m.col--
		}
	case "l", "right":
		if m.col < b.Cols-1 {
			m.col++
		}
	case "k", "up":
		if m.row > 0 {
			m.row--
		}
	case "j", "down":
		if m.row < b.Rows-1 {
			m.row++
		}

	case "p":
		return m.act(func() (string, error) {
			p, ok := m.svc.Inventory.Grid().ProductAt(m.row, m.col)
			if !ok {
				return "nothing to pick here", nil
			}
			if _, err := m.svc.Pick(m.ctx, p.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf("picked %s", p.Name), nil
		})

	case "x":
		return m.act(func() (string, error) {
			p, ok := m.svc.Inventory.Grid().ProductAt(m.row, m.col)
			if !ok {
				return "nothing to shelve here", nil
			}
			if _, err := m.svc.Shelve(m.ctx, p.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf("shelved %s", p.Name), nil
		})

	case "r":
		return m.act(func() (string, error) {
			picked := m.pickedProduct()
			if picked == nil {
				return "nothing is picked", nil
			}
			_, err := m.svc.Return(m.ctx, picked.ID)
			if errors.Is(err, inventory.ErrCellOccupied) {
				return fmt.Sprintf("%s came back without a cell", picked.Name), nil
			}
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("returned %s", picked.Name), nil
		})

	case "u":
		return m.act(func() (string, error) {
			ok, err := m.svc.Undo(m.ctx)
			if err != nil {
				return "", err
			}
			if !ok {
				return "nothing to undo", nil
			}
			return "undone", nil
		})
	}

	m.status = normalHelp
	return m, nil
}

func (m Model) act(f func() (string, error)) (tea.Model, tea.Cmd) {
	status, err := f()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = status
	return m, nil
}

// pickedProduct finds the most recently picked product, which is the
// one a bare return most plausibly targets. The collection is newest
// first, so the first hit wins.
func (m Model) pickedProduct() *inventoryRef {
	for _, p := range m.svc.Inventory.All() {
		if p.Picked {
			return &inventoryRef{ID: p.ID, Name: p.Name}
		}
	}
	return nil
}

type inventoryRef struct {
	ID   string
	Name string
}
