package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"tableflip.dev/scorta/pkg/glyph"
	"tableflip.dev/scorta/pkg/product"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" product")
	default:
		_, _ = c.Println(" products")
	}
}

// Products renders one row per product: expiry mark, name, lot, expiry
// text, and where the product currently is. Picked products render with
// their name struck through.
func (pp *PrettyPrint) Products(products ...*product.Product) {
	if len(products) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, p := range products {
		name := p.Name
		if p.Picked {
			name = glyph.Strike(name)
		}
		row := []interface{}{
			product.Classify(p.ExpiryText).Status.String(),
			name,
			p.Lot,
			p.ExpiryText,
			Location(p),
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(p.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Location describes where a product lives right now.
func Location(p *product.Product) string {
	switch {
	case p.Picked && p.Staged != nil:
		return fmt.Sprintf("picked (from %s)", p.Staged)
	case p.Picked:
		return "picked"
	case p.Position != nil:
		return p.Position.String()
	default:
		return "shelf"
	}
}
