package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions narrows a product listing.
type FilterOptions struct {
	Search   string
	Status   string
	Unplaced bool
	Picked   bool
	ShowID   bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Only products in this expiry tier: green, yellow, red, or expired.")
	cmd.Flags().BoolVar(&o.Unplaced, "unplaced", false,
		"Only products without a grid cell.")
	cmd.Flags().BoolVar(&o.Picked, "picked", false,
		"Only products currently picked.")
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show product ids.")
}
