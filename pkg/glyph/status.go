package glyph

import (
	"fmt"
	"strings"
)

type Glyph struct {
	Key     string
	Symbol  string
	Noun    string
	Meaning string
	Aliases []string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Status is the expiry tier of a product, derived from its expiry text.
type Status int

const (
	NoStatus Status = iota
	Green
	Yellow
	Red
	Expired
	Any
)

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     " ",
		Symbol:  " ",
		Noun:    "unmarked",
		Meaning: "no expiry date recognized",
		Aliases: []string{"none", "unmarked"},
	}, Glyph{
		Key:     "g",
		Symbol:  "🟢",
		Noun:    "green",
		Meaning: "expires well in the future",
		Aliases: []string{"green", "ok", "fresh"},
	}, Glyph{
		Key:     "y",
		Symbol:  "🟡",
		Noun:    "yellow",
		Meaning: "expires soon",
		Aliases: []string{"yellow", "soon"},
	}, Glyph{
		Key:     "r",
		Symbol:  "🔴",
		Noun:    "red",
		Meaning: "expires within days",
		Aliases: []string{"red", "urgent"},
	}, Glyph{
		Key:     "x",
		Symbol:  "☠️",
		Noun:    "expired",
		Meaning: "expiry date has passed",
		Aliases: []string{"expired", "skull", "dead"},
	}, Glyph{
		Key:     "",
		Symbol:  "",
		Noun:    "",
		Meaning: "any",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	return s.Glyph().String()
}

// StatusForAlias resolves a CLI filter word like "expired" or "red" to
// its Status. Unknown words produce an error, the empty string means Any.
func StatusForAlias(alias string) (Status, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	if a == "" {
		return Any, nil
	}
	for i, g := range DefaultGlyphs() {
		for _, al := range g.Aliases {
			if al == a {
				return Status(i), nil
			}
		}
	}
	return Any, fmt.Errorf("unknown status %q", alias)
}
