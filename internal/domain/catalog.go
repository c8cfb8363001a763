package domain

// VehicleQuery selects catalog products for a vehicle.
type VehicleQuery struct {
	Make  string
	Model string
	Year  string
	Part  string
}

// ProductGroup is one part name with its sellable variants.
type ProductGroup struct {
	Part     string           `json:"part"`
	Variants []ProductVariant `json:"variants"`
}

// ProductVariant is a concrete catalog item for a part.
type ProductVariant struct {
	SKU           string    `json:"sku"`
	Specification string    `json:"specification"`
	Price         Money     `json:"price"`
	Stock         int       `json:"stock"`
	SubParts      []SubPart `json:"subParts"`
}

// SubPart is a component that ships with a variant.
type SubPart struct {
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Price Money  `json:"price"`
}
