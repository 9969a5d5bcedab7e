package dto

import "github.com/guttosm/checkout-service/internal/domain/model"

// ShippingResponse is the freight breakdown of a quote.
type ShippingResponse struct {
	TaxableWeight    string `json:"taxable_weight" example:"7.00"`
	BaseFreight      string `json:"base_freight" example:"14.00"`
	HandlingFee      string `json:"handling_fee" example:"12.00"`
	FragileSurcharge string `json:"fragile_surcharge" example:"0.00"`
	RegionFactor     string `json:"region_factor" example:"1.05"`
	TierFactor       string `json:"tier_factor" example:"0.50"`
	Total            string `json:"total" example:"13.65"`
} // @name ShippingResponse

// QuoteResponse is the price breakdown returned by the quote endpoints.
// Amounts are decimal strings with two fraction digits.
//
// @Description Price breakdown of a cart
type QuoteResponse struct {
	Region             string           `json:"region" example:"SOUTH"`
	Tier               string           `json:"tier" example:"SILVER"`
	Subtotal           string           `json:"subtotal" example:"600.00"`
	CategoryDiscount   string           `json:"category_discount" example:"0.00"`
	ValueDiscount      string           `json:"value_discount" example:"60.00"`
	DiscountedSubtotal string           `json:"discounted_subtotal" example:"540.00"`
	Shipping           ShippingResponse `json:"shipping"`
	Total              string           `json:"total" example:"553.65"`
} // @name QuoteResponse

// NewQuoteResponse formats a quote for the API.
func NewQuoteResponse(q model.Quote) QuoteResponse {
	return QuoteResponse{
		Region:             string(q.Region),
		Tier:               string(q.Tier),
		Subtotal:           q.Subtotal.StringFixed(model.MoneyScale),
		CategoryDiscount:   q.CategoryDiscount.StringFixed(model.MoneyScale),
		ValueDiscount:      q.ValueDiscount.StringFixed(model.MoneyScale),
		DiscountedSubtotal: q.DiscountedSubtotal.StringFixed(model.MoneyScale),
		Shipping: ShippingResponse{
			TaxableWeight:    q.Shipping.TaxableWeight.StringFixed(model.MoneyScale),
			BaseFreight:      q.Shipping.BaseFreight.StringFixed(model.MoneyScale),
			HandlingFee:      q.Shipping.HandlingFee.StringFixed(model.MoneyScale),
			FragileSurcharge: q.Shipping.FragileSurcharge.StringFixed(model.MoneyScale),
			RegionFactor:     q.Shipping.RegionFactor.StringFixed(model.MoneyScale),
			TierFactor:       q.Shipping.TierFactor.StringFixed(model.MoneyScale),
			Total:            q.Shipping.Total.StringFixed(model.MoneyScale),
		},
		Total: q.Total.StringFixed(model.MoneyScale),
	}
}

// CheckoutResponse is returned by a successful checkout.
//
// @Description Result of a successful checkout
type CheckoutResponse struct {
	Success       bool   `json:"success" example:"true"`
	TransactionID string `json:"transaction_id" example:"tx-8f14e45f"`
	Message       string `json:"message" example:"Checkout completed successfully"`
	Amount        string `json:"amount" example:"553.65"`
} // @name CheckoutResponse

// NewCheckoutResponse formats a checkout result for the API.
func NewCheckoutResponse(r model.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Success:       r.Success,
		TransactionID: r.TransactionID,
		Message:       r.Message,
		Amount:        r.Amount.StringFixed(model.MoneyScale),
	}
}
