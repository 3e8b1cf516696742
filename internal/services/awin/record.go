package awin

// Record is one row of the AWIN product feed. Every column is text; flags are
// "1" or "0". Records are built by the Normalizer and not modified afterwards.
type Record struct {
	ProductID            string `json:"product_id"`
	MerchantCategory     string `json:"merchant_category"`
	Price                string `json:"price"`
	BrandName            string `json:"brand_name"`
	UPC                  string `json:"upc"`
	EAN                  string `json:"ean"`
	MPN                  string `json:"mpn"`
	ISBN                 string `json:"isbn"`
	ModelNumber          string `json:"model_number"`
	ProductName          string `json:"product_name"`
	Description          string `json:"description"`
	Specifications       string `json:"specifications"`
	PromotionalText      string `json:"promotional_text"`
	Language             string `json:"language"`
	DeepLink             string `json:"deep_link"`
	MerchantThumb        string `json:"merchant_thumb"`
	ImageURL             string `json:"image_url"`
	DeliveryTime         string `json:"delivery_time"`
	ValidFrom            string `json:"valid_from"`
	ValidTo              string `json:"valid_to"`
	Currency             string `json:"currency"`
	DeliveryCost         string `json:"delivery_cost"`
	WebOffer             string `json:"web_offer"`
	PreOrder             string `json:"pre_order"`
	InStock              string `json:"in_stock"`
	StockQuantity        string `json:"stock_quantity"`
	IsForSale            string `json:"is_for_sale"`
	Warranty             string `json:"warranty"`
	Condition            string `json:"condition"`
	ProductType          string `json:"product_type"`
	ParentProductID      string `json:"parent_product_id"`
	CommissionGroup      string `json:"commission_group"`
	LastUpdated          string `json:"last_updated"`
	Dimensions           string `json:"dimensions"`
	Colour               string `json:"colour"`
	Keywords             string `json:"keywords"`
	Custom1              string `json:"custom1"`
	Custom2              string `json:"custom2"`
	Custom3              string `json:"custom3"`
	Custom4              string `json:"custom4"`
	Custom5              string `json:"custom5"`
	Saving               string `json:"saving"`
	DeliveryRestrictions string `json:"delivery_restrictions"`
	Reviews              string `json:"reviews"`
	AverageRating        string `json:"average_rating"`
	Rating               string `json:"rating"`
	AlternateImage       string `json:"alternate_image"`
	LargeImage           string `json:"large_image"`
	BasketLink           string `json:"basket_link"`
}

type column struct {
	name string
	get  func(*Record) string
}

// schema is the full AWIN column order. Consumers depend on these names and
// positions; append, never rename or reorder.
var schema = []column{
	{"product_id", func(r *Record) string { return r.ProductID }},
	{"merchant_category", func(r *Record) string { return r.MerchantCategory }},
	{"price", func(r *Record) string { return r.Price }},
	{"brand_name", func(r *Record) string { return r.BrandName }},
	{"upc", func(r *Record) string { return r.UPC }},
	{"ean", func(r *Record) string { return r.EAN }},
	{"mpn", func(r *Record) string { return r.MPN }},
	{"isbn", func(r *Record) string { return r.ISBN }},
	{"model_number", func(r *Record) string { return r.ModelNumber }},
	{"product_name", func(r *Record) string { return r.ProductName }},
	{"description", func(r *Record) string { return r.Description }},
	{"specifications", func(r *Record) string { return r.Specifications }},
	{"promotional_text", func(r *Record) string { return r.PromotionalText }},
	{"language", func(r *Record) string { return r.Language }},
	{"deep_link", func(r *Record) string { return r.DeepLink }},
	{"merchant_thumb", func(r *Record) string { return r.MerchantThumb }},
	{"image_url", func(r *Record) string { return r.ImageURL }},
	{"delivery_time", func(r *Record) string { return r.DeliveryTime }},
	{"valid_from", func(r *Record) string { return r.ValidFrom }},
	{"valid_to", func(r *Record) string { return r.ValidTo }},
	{"currency", func(r *Record) string { return r.Currency }},
	{"delivery_cost", func(r *Record) string { return r.DeliveryCost }},
	{"web_offer", func(r *Record) string { return r.WebOffer }},
	{"pre_order", func(r *Record) string { return r.PreOrder }},
	{"in_stock", func(r *Record) string { return r.InStock }},
	{"stock_quantity", func(r *Record) string { return r.StockQuantity }},
	{"is_for_sale", func(r *Record) string { return r.IsForSale }},
	{"warranty", func(r *Record) string { return r.Warranty }},
	{"condition", func(r *Record) string { return r.Condition }},
	{"product_type", func(r *Record) string { return r.ProductType }},
	{"parent_product_id", func(r *Record) string { return r.ParentProductID }},
	{"commission_group", func(r *Record) string { return r.CommissionGroup }},
	{"last_updated", func(r *Record) string { return r.LastUpdated }},
	{"dimensions", func(r *Record) string { return r.Dimensions }},
	{"colour", func(r *Record) string { return r.Colour }},
	{"keywords", func(r *Record) string { return r.Keywords }},
	{"custom1", func(r *Record) string { return r.Custom1 }},
	{"custom2", func(r *Record) string { return r.Custom2 }},
	{"custom3", func(r *Record) string { return r.Custom3 }},
	{"custom4", func(r *Record) string { return r.Custom4 }},
	{"custom5", func(r *Record) string { return r.Custom5 }},
	{"saving", func(r *Record) string { return r.Saving }},
	{"delivery_restrictions", func(r *Record) string { return r.DeliveryRestrictions }},
	{"reviews", func(r *Record) string { return r.Reviews }},
	{"average_rating", func(r *Record) string { return r.AverageRating }},
	{"rating", func(r *Record) string { return r.Rating }},
	{"alternate_image", func(r *Record) string { return r.AlternateImage }},
	{"large_image", func(r *Record) string { return r.LargeImage }},
	{"basket_link", func(r *Record) string { return r.BasketLink }},
}

var getters = func() map[string]func(*Record) string {
	m := make(map[string]func(*Record) string, len(schema))
	for _, c := range schema {
		m[c.name] = c.get
	}
	return m
}()

// FullColumns returns every AWIN column in feed order.
func FullColumns() []string {
	names := make([]string, len(schema))
	for i, c := range schema {
		names[i] = c.name
	}
	return names
}

// MinimalColumns is the subset AWIN requires for a listing to go live.
func MinimalColumns() []string {
	return []string{
		"product_id",
		"product_name",
		"price",
		"currency",
		"deep_link",
		"image_url",
		"merchant_category",
		"description",
		"brand_name",
		"in_stock",
		"mpn",
	}
}

// Get returns the value of the named column. ok is false for names outside the schema.
func (r *Record) Get(column string) (value string, ok bool) {
	get, ok := getters[column]
	if !ok {
		return "", false
	}
	return get(r), true
}

// Map returns every column of the record keyed by name.
func (r *Record) Map() map[string]string {
	m := make(map[string]string, len(schema))
	for _, c := range schema {
		m[c.name] = c.get(r)
	}
	return m
}
