// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model. Field level
// business validation stays in the pricing engine so that every entry point
// reports the same errors; DTOs only check the request shape.
package dto

import (
	"strings"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ProductRequest is a product snapshot inside a quote request.
// Decimal fields accept JSON numbers or strings.
type ProductRequest struct {
	ID       string           `json:"id" example:"sku-123"`
	Name     string           `json:"name,omitempty" example:"Television"`
	Price    *decimal.Decimal `json:"price" swaggertype:"string" example:"600.00"`
	Weight   *decimal.Decimal `json:"weight" swaggertype:"string" example:"7"`
	Length   *decimal.Decimal `json:"length,omitempty" swaggertype:"string" example:"100"`
	Width    *decimal.Decimal `json:"width,omitempty" swaggertype:"string" example:"60"`
	Height   *decimal.Decimal `json:"height,omitempty" swaggertype:"string" example:"15"`
	Category string           `json:"category" example:"ELECTRONICS"`
	Fragile  bool             `json:"fragile" example:"true"`
} // @name ProductRequest

// LineItemRequest is one line of a quote request.
type LineItemRequest struct {
	Product  ProductRequest `json:"product"`
	Quantity int64          `json:"quantity" example:"1"`
} // @name LineItemRequest

// QuoteRequest is the JSON body of POST /api/quotes.
//
// @Description Ad-hoc cart to be priced for a region and customer tier
type QuoteRequest struct {
	Region string            `json:"region" example:"SOUTH"`
	Tier   string            `json:"tier" example:"SILVER"`
	Items  []LineItemRequest `json:"items"`
} // @name QuoteRequest

// Cart converts the request items into a domain cart.
func (r *QuoteRequest) Cart() *model.Cart {
	items := make([]model.LineItem, len(r.Items))
	for i, it := range r.Items {
		p := it.Product
		items[i] = model.LineItem{
			Product: model.Product{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price,
				Weight:   p.Weight,
				Length:   p.Length,
				Width:    p.Width,
				Height:   p.Height,
				Category: model.ProductCategory(strings.ToUpper(strings.TrimSpace(p.Category))),
				Fragile:  p.Fragile,
			},
			Quantity: it.Quantity,
		}
	}
	return &model.Cart{Items: items}
}

// RegionValue normalises the region name. Unknown names are kept so the
// pricing engine can report them.
func (r *QuoteRequest) RegionValue() model.Region {
	if region, err := model.ParseRegion(r.Region); err == nil {
		return region
	}
	return model.Region(r.Region)
}

// TierValue normalises the tier name. Unknown names are kept so the
// pricing engine can report them.
func (r *QuoteRequest) TierValue() model.CustomerTier {
	if tier, err := model.ParseTier(r.Tier); err == nil {
		return tier
	}
	return model.CustomerTier(r.Tier)
}

// CheckoutRequest is the JSON body of POST /api/checkout.
//
// @Description Stored cart to be checked out on behalf of its owner
type CheckoutRequest struct {
	CartID     string `json:"cart_id" binding:"required" example:"cart-42"`
	CustomerID string `json:"customer_id" binding:"required" example:"customer-7"`
} // @name CheckoutRequest

// ValidationError represents a request shape error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks identifiers are not blank.
func (r *CheckoutRequest) Validate() error {
	if strings.TrimSpace(r.CartID) == "" {
		return &ValidationError{Field: "cart_id", Message: "is required"}
	}
	if strings.TrimSpace(r.CustomerID) == "" {
		return &ValidationError{Field: "customer_id", Message: "is required"}
	}
	return nil
}
