package model

import "github.com/shopspring/decimal"

// ProductCategory groups products for volume discounts.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "ELECTRONICS"
	CategoryBook        ProductCategory = "BOOK"
	CategoryClothing    ProductCategory = "CLOTHING"
	CategoryFood        ProductCategory = "FOOD"
	CategoryFurniture   ProductCategory = "FURNITURE"
	CategoryToy         ProductCategory = "TOY"
	CategoryOther       ProductCategory = "OTHER"
)

var knownCategories = map[ProductCategory]struct{}{
	CategoryElectronics: {},
	CategoryBook:        {},
	CategoryClothing:    {},
	CategoryFood:        {},
	CategoryFurniture:   {},
	CategoryToy:         {},
	CategoryOther:       {},
}

// Valid reports whether c is a known category.
func (c ProductCategory) Valid() bool {
	_, ok := knownCategories[c]
	return ok
}

// Product is a sellable item as captured in a cart.
// Price and Weight are required; the dimensions are optional and only
// contribute to dimensional weight when all three are present.
type Product struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Weight   *decimal.Decimal `json:"weight"`
	Length   *decimal.Decimal `json:"length,omitempty"`
	Width    *decimal.Decimal `json:"width,omitempty"`
	Height   *decimal.Decimal `json:"height,omitempty"`
	Category ProductCategory  `json:"category"`
	Fragile  bool             `json:"fragile"`
}

// HasDimensions reports whether all three dimensions are present.
func (p Product) HasDimensions() bool {
	return p.Length != nil && p.Width != nil && p.Height != nil
}
