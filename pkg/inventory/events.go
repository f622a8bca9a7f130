package inventory

import (
	"sort"
	"time"

	"tableflip.dev/scorta/pkg/product"
)

// Action names a mutation recorded in the event log.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionMove   Action = "move"
	ActionPick   Action = "pick"
	ActionReturn Action = "return"
)

// Event is one audit record: what happened, to which product, and when.
// The product is a detached copy taken at append time.
type Event struct {
	Action    Action            `json:"action"`
	Product   *product.Product  `json:"product"`
	Timestamp product.Timestamp `json:"timestamp"`
}

// Log is the append-only audit trail of mutations. It feeds derived
// statistics only; Store and Grid correctness never depend on it.
// Growth is unbounded, which is fine at single-shop scale.
type Log struct {
	events []Event
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(action Action, p *product.Product) {
	l.events = append(l.events, Event{
		Action:    action,
		Product:   p.Clone(),
		Timestamp: product.Timestamp{Time: time.Now()},
	})
}

// All returns a copy of the recorded events, oldest first.
func (l *Log) All() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Replace swaps in events loaded from persistence.
func (l *Log) Replace(events []Event) {
	l.events = make([]Event, len(events))
	copy(l.events, events)
}

func (l *Log) Len() int {
	return len(l.events)
}

// NameCount pairs a product name with an occurrence count.
type NameCount struct {
	Name  string
	Count int
}

// Stats is the on-demand aggregation over the event log.
type Stats struct {
	Counts       map[Action]int
	TopAdded     []NameCount
	TopRemoved   []NameCount
	AverageDwell time.Duration
	DwellSamples int
}

// Stats aggregates the whole log. Average dwell is the mean of
// (delete timestamp - add timestamp) across add/delete pairs matched
// by product id. Top lists hold at most n names.
func (l *Log) Stats(n int) Stats {
	return l.StatsSince(time.Time{}, n)
}

// StatsSince aggregates only events recorded at or after since.
func (l *Log) StatsSince(since time.Time, n int) Stats {
	s := Stats{Counts: make(map[Action]int, 6)}

	added := make(map[string]int)
	removed := make(map[string]int)
	addedAt := make(map[string]time.Time)

	var dwell time.Duration
	for _, e := range l.events {
		if !since.IsZero() && e.Timestamp.Before(since) {
			continue
		}
		s.Counts[e.Action]++
		if e.Product == nil {
			continue
		}
		switch e.Action {
		case ActionAdd:
			if e.Product.Name != "" {
				added[e.Product.Name]++
			}
			if e.Product.ID != "" {
				addedAt[e.Product.ID] = e.Timestamp.Time
			}
		case ActionDelete:
			if e.Product.Name != "" {
				removed[e.Product.Name]++
			}
			if at, ok := addedAt[e.Product.ID]; ok && e.Timestamp.After(at) {
				dwell += e.Timestamp.Sub(at)
				s.DwellSamples++
			}
		}
	}
	if s.DwellSamples > 0 {
		s.AverageDwell = dwell / time.Duration(s.DwellSamples)
	}

	s.TopAdded = topNames(added, n)
	s.TopRemoved = topNames(removed, n)
	return s
}

func topNames(counts map[string]int, n int) []NameCount {
	list := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		list = append(list, NameCount{Name: name, Count: count})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count == list[j].Count {
			return list[i].Name < list[j].Name
		}
		return list[i].Count > list[j].Count
	})
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	return list
}
