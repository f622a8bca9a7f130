// Package transfer converts external JSON of unknown shape into valid
// product records and renders the collection back out as a pretty
// export document.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/product"
)

var (
	// ErrParse means the input was not JSON at all.
	ErrParse = errors.New("transfer: malformed JSON")

	// ErrInvalidFormat means the JSON parsed but exposed no product list.
	ErrInvalidFormat = errors.New("transfer: no usable product list")

	// ErrHTMLInput flags the classic misconfigured-fetch failure where an
	// HTML page arrives instead of the export document.
	ErrHTMLInput = errors.New("transfer: input looks like HTML, not JSON")
)

// listKeys are the object keys probed for the product list when the
// top-level value is not itself an array.
var listKeys = []string{"products", "items"}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Normalize coerces raw bytes into a valid, de-duplicated collection.
// Per-entry problems degrade gracefully: unusable entries are dropped,
// corrupt or colliding positions become shelf-only, missing ids are
// regenerated. Only input-level problems (not JSON, no list) fail.
func Normalize(data []byte, bounds inventory.Bounds) ([]*product.Product, error) {
	return normalizeAt(time.Now(), data, bounds)
}

func normalizeAt(now time.Time, data []byte, bounds inventory.Bounds) ([]*product.Product, error) {
	text := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if looksLikeHTML(text) {
		return nil, ErrHTMLInput
	}

	list, err := productList(text)
	if err != nil {
		return nil, err
	}

	out := make([]*product.Product, 0, len(list))
	ids := make(map[string]bool, len(list))
	cells := make(map[product.Position]bool)

	for _, raw := range list {
		var r rawProduct
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}

		p := &product.Product{
			Name:       strings.TrimSpace(string(r.Name)),
			Lot:        strings.TrimSpace(string(r.Lot)),
			ExpiryText: strings.TrimSpace(string(r.ExpiryText)),
		}
		if p.Blank() {
			continue
		}

		id := strings.TrimSpace(string(r.ID))
		for id == "" || ids[id] {
			id = product.NewID()
		}
		ids[id] = true
		p.ID = id

		if t, err := product.ParseTime(string(r.DateAdded)); err == nil && !t.IsZero() {
			p.DateAdded = product.Timestamp{Time: t}
		} else {
			p.DateAdded = product.Timestamp{Time: now}
		}

		p.Picked = bool(r.InPrelievo)
		pos, hasPos := r.position()
		switch {
		case p.Picked:
			// A picked product never holds a cell; a valid position
			// becomes its staged return target.
			if staged, ok := r.staged(); ok && bounds.Contains(staged.Row, staged.Col) {
				p.Staged = &staged
			} else if hasPos && bounds.Contains(pos.Row, pos.Col) {
				p.Staged = &pos
			}
		case hasPos && bounds.Contains(pos.Row, pos.Col) && !cells[pos]:
			cells[pos] = true
			p.Position = &pos
		}
		// Position collisions within the batch are first-come-first-served;
		// later claimants stay shelf-only.

		out = append(out, p)
	}

	return out, nil
}

// productList classifies the top-level shape: a direct array, or an
// object exposing an array under a recognized key.
func productList(text []byte) ([]json.RawMessage, error) {
	var top any
	if err := json.Unmarshal(text, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	switch top.(type) {
	case []any:
		var list []json.RawMessage
		if err := json.Unmarshal(text, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return list, nil
	case map[string]any:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(text, &obj); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		for _, key := range listKeys {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			var list []json.RawMessage
			if err := json.Unmarshal(raw, &list); err == nil {
				return list, nil
			}
		}
		return nil, ErrInvalidFormat
	default:
		return nil, ErrInvalidFormat
	}
}

func looksLikeHTML(text []byte) bool {
	lower := strings.ToLower(string(text))
	for _, marker := range []string{"<!doctype", "<html", "<head", "<body"} {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}

// rawProduct tolerates every shape observed in the wild: flat row/col,
// nested position objects, legacy _prevRow/_prevCol staging backups,
// numbers where strings belong, and strings where numbers belong.
type rawProduct struct {
	ID         flexString  `json:"id"`
	Name       flexString  `json:"name"`
	Lot        flexString  `json:"lot"`
	ExpiryText flexString  `json:"expiryText"`
	DateAdded  flexString  `json:"dateAdded"`
	InPrelievo flexBool    `json:"inPrelievo"`
	Row        flexIndex   `json:"row"`
	Col        flexIndex   `json:"col"`
	Position   *rawPosition `json:"position"`
	Staged     *rawPosition `json:"staged"`
	PrevRow    flexIndex   `json:"_prevRow"`
	PrevCol    flexIndex   `json:"_prevCol"`
}

type rawPosition struct {
	Row flexIndex `json:"row"`
	Col flexIndex `json:"col"`
}

func (r *rawProduct) position() (product.Position, bool) {
	if r.Position != nil && r.Position.Row.ok && r.Position.Col.ok {
		return product.Position{Row: r.Position.Row.value, Col: r.Position.Col.value}, true
	}
	if r.Row.ok && r.Col.ok {
		return product.Position{Row: r.Row.value, Col: r.Col.value}, true
	}
	return product.Position{}, false
}

func (r *rawProduct) staged() (product.Position, bool) {
	if r.Staged != nil && r.Staged.Row.ok && r.Staged.Col.ok {
		return product.Position{Row: r.Staged.Row.value, Col: r.Staged.Col.value}, true
	}
	if r.PrevRow.ok && r.PrevCol.ok {
		return product.Position{Row: r.PrevRow.value, Col: r.PrevCol.value}, true
	}
	return product.Position{}, false
}

// flexString accepts strings, numbers, and booleans, stringifying the
// non-strings. Anything else reads as empty rather than failing the entry.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = flexString(strconv.FormatBool(v))
		return nil
	}
	*f = ""
	return nil
}

// flexBool accepts booleans and the strings "true"/"false"; anything
// else reads as false.
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = flexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			*f = flexBool(parsed)
			return nil
		}
	}
	*f = false
	return nil
}

// flexIndex accepts whole numbers and numeric strings. Fractional
// numbers and anything else read as absent, which drops the position
// rather than inventing one.
type flexIndex struct {
	value int
	ok    bool
}

func (f *flexIndex) UnmarshalJSON(b []byte) error {
	f.value, f.ok = 0, false
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		if n == math.Trunc(n) {
			f.value = int(n)
			f.ok = true
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			f.value = v
			f.ok = true
		}
		return nil
	}
	return nil
}
