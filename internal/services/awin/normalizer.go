package awin

import (
	"regexp"
	"strings"

	"awinfeed/internal/logger"
	"awinfeed/internal/services/shopify"
	"awinfeed/internal/worker/processors/validation"
)

const (
	defaultBrand    = "Generic"
	defaultCurrency = "USD"
	defaultLanguage = "en"
	conditionNew    = "new"
)

var htmlTag = regexp.MustCompile(`<.*?>`)

type Options struct {
	// StorefrontURL is the public shop origin, without trailing slash.
	StorefrontURL string
	Currency      string
	Language      string
	Categories    *CategoryMap
	// Logger receives a debug line per skipped product. Optional.
	Logger *logger.Logger
}

// Normalizer turns Shopify products into AWIN feed records. It holds no
// per-run state, so one instance can be reused for every run.
type Normalizer struct {
	opts      Options
	validator *validation.Validator
	logger    *logger.Logger
}

func NewNormalizer(opts Options) *Normalizer {
	if opts.Categories == nil {
		opts.Categories = DefaultCategoryMap()
	}
	if opts.Currency == "" {
		opts.Currency = defaultCurrency
	}
	if opts.Language == "" {
		opts.Language = defaultLanguage
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	opts.StorefrontURL = strings.TrimRight(opts.StorefrontURL, "/")
	return &Normalizer{
		opts:      opts,
		validator: validation.New(),
		logger:    opts.Logger,
	}
}

// Normalize converts every eligible product, in input order. Products without
// a usable first variant are skipped.
func (n *Normalizer) Normalize(products []shopify.Record) []Record {
	records, _ := n.NormalizeWithStats(products)
	return records
}

// NormalizeWithStats is Normalize that also reports how many products were skipped.
func (n *Normalizer) NormalizeWithStats(products []shopify.Record) ([]Record, int) {
	records := make([]Record, 0, len(products))
	skipped := 0
	for _, product := range products {
		if ok, reason := n.validator.Eligible(product); !ok {
			skipped++
			n.logger.Debug("Skipping product %s: %s", product.String("id", "?"), reason)
			continue
		}
		records = append(records, n.normalize(product))
	}
	return records, skipped
}

func (n *Normalizer) normalize(product shopify.Record) Record {
	variant := product.Records("variants")[0]
	images := product.Records("images")
	legacyImage := product.Record("image")

	sku := strings.TrimSpace(variant.String("sku", ""))
	category := n.opts.Categories.Resolve(product.String("product_type", ""))
	productLink := n.productURL(product.String("handle", ""))

	inStock := "0"
	if variant.Int("inventory_quantity", 0) > 0 {
		inStock = "1"
	}
	forSale := "0"
	if product.String("status", "") == "active" {
		forSale = "1"
	}

	return Record{
		ProductID:        sku,
		MerchantCategory: category,
		Price:            variant.String("price", ""),
		BrandName:        brand(product.String("vendor", "")),
		UPC:              variant.String("barcode", ""),
		MPN:              sku,
		ProductName:      product.String("title", ""),
		Description:      StripHTML(product.String("body_html", "")),
		Language:         n.opts.Language,
		DeepLink:         productLink,
		MerchantThumb:    legacyImage.String("src", ""),
		ImageURL:         primaryImage(images, legacyImage),
		ValidFrom:        product.String("published_at", ""),
		Currency:         n.opts.Currency,
		WebOffer:         variant.String("compare_at_price", ""),
		InStock:          inStock,
		StockQuantity:    variant.String("inventory_quantity", ""),
		IsForSale:        forSale,
		Condition:        conditionNew,
		ProductType:      category,
		LastUpdated:      product.String("updated_at", ""),
		Colour:           colour(product.Records("options")),
		Keywords:         product.String("tags", ""),
		AlternateImage:   alternateImage(images),
		LargeImage:       largestImage(images),
		BasketLink:       productLink,
	}
}

func (n *Normalizer) productURL(handle string) string {
	return n.opts.StorefrontURL + "/products/" + handle
}

// StripHTML removes anything between '<' and the nearest '>' and trims the
// result. Entities are left as they are.
func StripHTML(html string) string {
	return strings.TrimSpace(htmlTag.ReplaceAllString(html, ""))
}

func brand(vendor string) string {
	if strings.TrimSpace(vendor) == "" {
		return defaultBrand
	}
	return vendor
}

func primaryImage(images []shopify.Record, legacy shopify.Record) string {
	if len(images) > 0 {
		return images[0].String("src", "")
	}
	return legacy.String("src", "")
}

func alternateImage(images []shopify.Record) string {
	if len(images) > 1 {
		return images[1].String("src", "")
	}
	return ""
}

// largestImage picks the image with the biggest pixel area. On equal area the
// earlier image wins.
func largestImage(images []shopify.Record) string {
	var (
		best     shopify.Record
		bestArea int64 = -1
	)
	for _, img := range images {
		area := img.Int("width", 0) * img.Int("height", 0)
		if area > bestArea {
			best, bestArea = img, area
		}
	}
	return best.String("src", "")
}

// colour returns the first value of the first "Color"/"Colour" option that has values.
func colour(options []shopify.Record) string {
	for _, opt := range options {
		name := strings.ToLower(strings.TrimSpace(opt.String("name", "")))
		if name != "color" && name != "colour" {
			continue
		}
		if values := opt.Strings("values"); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
