// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ProductOptions captures the editable product fields.
type ProductOptions struct {
	Name   string
	Lot    string
	Expiry string
}

func AddProductArgs(cmd *cobra.Command, o *ProductOptions) {
	cmd.Flags().StringVar(&o.Lot, "lot", "",
		"Lot or batch code for the product.")
	cmd.Flags().StringVar(&o.Expiry, "expiry", "",
		`Expiry date, example: --expiry="2026-02-28".`)
}

func AddNameArg(cmd *cobra.Command, o *ProductOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"New name for the product.")
}
