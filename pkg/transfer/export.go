package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/scorta/pkg/product"
)

const exportPrefix = "scorta-export"

// Marshal renders the full collection as pretty-printed JSON with
// 2-space indent, the shape Normalize round-trips without change.
func Marshal(products []*product.Product) ([]byte, error) {
	if products == nil {
		products = []*product.Product{}
	}
	return json.MarshalIndent(products, "", "  ")
}

// Filename names the downloadable export: identifying prefix plus the
// current date.
func Filename(now time.Time) string {
	return fmt.Sprintf("%s-%s.json", exportPrefix, now.Format("2006-01-02"))
}
