package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"tableflip.dev/scorta/pkg/glyph"
	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/product"
)

const cellWidth = len(" 10 ")

// Grid renders the shelf map: one mark per occupied cell, colored by
// expiry tier, with 1-based row and column labels around the edge.
func (pp *PrettyPrint) Grid(g *inventory.Grid) {
	b := g.Bounds()

	hf := color.New(color.Faint, color.FgWhite)
	rf := color.New(color.Faint, color.FgWhite)

	_, _ = hf.Print("    ")
	for c := 0; c < b.Cols; c++ {
		_, _ = hf.Printf("%*d", cellWidth, c+1)
	}
	fmt.Println("")

	for r := 0; r < b.Rows; r++ {
		_, _ = rf.Printf("%3d ", r+1)
		for c := 0; c < b.Cols; c++ {
			mark, width := "·", 1
			if p, ok := g.ProductAt(r, c); ok {
				if s := product.Classify(p.ExpiryText).Status; s == glyph.NoStatus {
					mark, width = glyph.Bold("▪"), 1
				} else {
					// Emoji marks render two columns wide.
					mark, width = s.String(), 2
				}
			}
			fmt.Printf("%s%s", strings.Repeat(" ", cellWidth-width), mark)
		}
		fmt.Println("")
	}

	c := color.New(color.Faint)
	_, _ = c.Printf("\n%d of %d cells occupied\n\n", g.OccupiedCount(), b.Rows*b.Cols)
}

// Legend renders the expiry mark key below the grid.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mark"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		if g.Noun == "" {
			continue
		}
		sym := g.Symbol
		if strings.TrimSpace(sym) == "" {
			sym = glyph.Bold("▪")
		}
		tbl.AddRow(sym, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
