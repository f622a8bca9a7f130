package product

import (
	"testing"
	"time"

	"tableflip.dev/scorta/pkg/glyph"
)

var classifyNow = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.Local)

func TestClassifyEmpty(t *testing.T) {
	e := ClassifyAt(classifyNow, "")
	if e.Status != glyph.NoStatus {
		t.Fatalf("expected NoStatus for empty input, got %v", e.Status)
	}
}

func TestClassifyUnparseable(t *testing.T) {
	for _, text := range []string{"soon", "n/a", "12.2025?", "2025-13-40"} {
		e := ClassifyAt(classifyNow, text)
		if e.Status != glyph.NoStatus {
			t.Fatalf("expected NoStatus for %q, got %v", text, e.Status)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want glyph.Status
		days int
	}{
		{name: "yesterday", text: "2025-03-09", want: glyph.Expired, days: -1},
		{name: "today is expired", text: "2025-03-10", want: glyph.Expired, days: 0},
		{name: "tomorrow", text: "2025-03-11", want: glyph.Red, days: 1},
		{name: "red boundary inclusive", text: "2025-03-17", want: glyph.Red, days: 7},
		{name: "first yellow day", text: "2025-03-18", want: glyph.Yellow, days: 8},
		{name: "yellow boundary inclusive", text: "2025-04-09", want: glyph.Yellow, days: 30},
		{name: "first green day", text: "2025-04-10", want: glyph.Green, days: 31},
		{name: "far future", text: "2027-01-01", want: glyph.Green},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := ClassifyAt(classifyNow, tc.text)
			if e.Status != tc.want {
				t.Fatalf("expected %v, got %v (days=%d)", tc.want, e.Status, e.Days)
			}
			if tc.days != 0 && e.Days != tc.days {
				t.Fatalf("expected %d days, got %d", tc.days, e.Days)
			}
		})
	}
}

func TestClassifyLayouts(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"2025-06-15", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)},
		{"15/06/2025", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)},
		{"15-06-2025", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)},
		{"2025/06/15", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)},
		{"06/2025", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)},
	}
	for _, tc := range tests {
		e := ClassifyAt(classifyNow, tc.text)
		if e.Status == glyph.NoStatus {
			t.Fatalf("expected %q to parse", tc.text)
		}
		if !e.Date.Equal(tc.want) {
			t.Fatalf("expected %q to parse to %v, got %v", tc.text, tc.want, e.Date)
		}
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 0, 1, 0, 0, time.Local)
	night := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.Local)
	for _, now := range []time.Time{morning, night} {
		e := ClassifyAt(now, "2025-03-17")
		if e.Days != 7 {
			t.Fatalf("expected 7 whole days at %v, got %d", now, e.Days)
		}
	}
}
