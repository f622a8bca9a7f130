package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// PositionOptions captures a grid cell. Rows and columns are 1-based on
// the command line and zero means unset.
type PositionOptions struct {
	Row int
	Col int

	Auto  bool
	Shelf bool
}

func AddPositionArgs(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().IntVar(&o.Row, "row", 0,
		"Grid row, starting at 1.")
	cmd.Flags().IntVar(&o.Col, "col", 0,
		"Grid column, starting at 1.")
}

func AddAutoArg(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().BoolVar(&o.Auto, "auto", false,
		"Fall back to the first free cell when the requested one is taken.")
}

func AddShelfArg(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().BoolVar(&o.Shelf, "shelf", false,
		"Take the product off the grid instead of placing it.")
}

// Given reports whether the operator supplied a cell at all.
func (o *PositionOptions) Given() bool {
	return o.Row != 0 || o.Col != 0
}

// Validate checks that a supplied cell is complete.
func (o *PositionOptions) Validate() error {
	if !o.Given() {
		return nil
	}
	if o.Row < 1 || o.Col < 1 {
		return errors.New("both --row and --col are required, starting at 1")
	}
	return nil
}

// RowIndex and ColIndex convert to the zero-based engine coordinates.
func (o *PositionOptions) RowIndex() int { return o.Row - 1 }
func (o *PositionOptions) ColIndex() int { return o.Col - 1 }
