package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/scorta/pkg/glyph"
	"tableflip.dev/scorta/pkg/printers"
	"tableflip.dev/scorta/pkg/product"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	tierStyles = map[glyph.Status]lipgloss.Style{
		glyph.NoStatus: lipgloss.NewStyle(),
		glyph.Green:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		glyph.Yellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		glyph.Red:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		glyph.Expired:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
	}
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shelf map"))
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewDetail())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewGrid() string {
	bounds := m.bounds()
	var b strings.Builder

	b.WriteString("    ")
	for c := 0; c < bounds.Cols; c++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%3d", c+1)))
	}
	b.WriteString("\n")

	for r := 0; r < bounds.Rows; r++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%3d ", r+1)))
		for c := 0; c < bounds.Cols; c++ {
			cell := " · "
			style := labelStyle
			if p, ok := m.svc.Inventory.Grid().ProductAt(r, c); ok {
				tier := product.Classify(p.ExpiryText).Status
				style = tierStyles[tier]
				cell = " ▪ "
			}
			if r == m.row && c == m.col {
				style = cursorStyle
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewDetail() string {
	p, ok := m.svc.Inventory.Grid().ProductAt(m.row, m.col)
	if !ok {
		return detailStyle.Render(labelStyle.Render(
			fmt.Sprintf("R%d C%d  empty", m.row+1, m.col+1)))
	}

	e := product.Classify(p.ExpiryText)
	lines := []string{
		fmt.Sprintf("%s %s", e.Status.Glyph().Symbol, p.Name),
	}
	if p.Lot != "" {
		lines = append(lines, labelStyle.Render("lot    ")+p.Lot)
	}
	if p.ExpiryText != "" {
		lines = append(lines, labelStyle.Render("expiry ")+p.ExpiryText)
	}
	lines = append(lines, labelStyle.Render("where  ")+printers.Location(p))
	return detailStyle.Render(strings.Join(lines, "\n"))
}
