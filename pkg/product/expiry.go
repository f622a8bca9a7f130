package product

import (
	"strings"
	"time"

	"tableflip.dev/scorta/pkg/glyph"
)

// Tier boundaries in whole days remaining until the expiry date. The
// boundary day belongs to the nearer tier: 0 days left is expired,
// exactly RedDays left is red, exactly YellowDays left is yellow.
const (
	RedDays    = 7
	YellowDays = 30
)

// Expiry is the classification of a free-text expiry date.
type Expiry struct {
	Status glyph.Status
	Date   time.Time
	Days   int
}

// Layouts accepted for expiry text. Month-only dates resolve to the
// first day of that month.
var expiryLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"01/2006",
	"1/2006",
}

// Classify maps free-text expiry input to a status tier. Empty or
// unrecognized text yields NoStatus rather than an error.
func Classify(text string) Expiry {
	return ClassifyAt(time.Now(), text)
}

func ClassifyAt(now time.Time, text string) Expiry {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Expiry{Status: glyph.NoStatus}
	}

	var when time.Time
	parsed := false
	for _, layout := range expiryLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			when = t
			parsed = true
			break
		}
	}
	if !parsed {
		return Expiry{Status: glyph.NoStatus}
	}

	days := daysBetween(now, when)
	e := Expiry{Date: when, Days: days}
	switch {
	case days <= 0:
		e.Status = glyph.Expired
	case days <= RedDays:
		e.Status = glyph.Red
	case days <= YellowDays:
		e.Status = glyph.Yellow
	default:
		e.Status = glyph.Green
	}
	return e
}

// daysBetween counts whole calendar days from now's date to then's date.
func daysBetween(now, then time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	b := time.Date(then.Year(), then.Month(), then.Day(), 0, 0, 0, 0, then.Location())
	return int(b.Sub(a) / (24 * time.Hour))
}
