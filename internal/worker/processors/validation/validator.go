package validation

import (
	"strings"

	"awinfeed/internal/services/shopify"
)

// Reasons a product is left out of the feed.
const (
	ReasonNoVariants = "no variants"
	ReasonNoPrice    = "primary variant has no price"
	ReasonNoSKU      = "primary variant has no sku"
)

// Validator decides which Shopify products can be listed. AWIN needs a stable
// product code and a price, both taken from the first variant.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Eligible reports whether product can be listed. When it cannot, reason says why.
func (v *Validator) Eligible(product shopify.Record) (ok bool, reason string) {
	variants := product.Records("variants")
	if len(variants) == 0 {
		return false, ReasonNoVariants
	}

	primary := variants[0]
	if strings.TrimSpace(primary.String("price", "")) == "" {
		return false, ReasonNoPrice
	}
	if strings.TrimSpace(primary.String("sku", "")) == "" {
		return false, ReasonNoSKU
	}

	return true, ""
}
