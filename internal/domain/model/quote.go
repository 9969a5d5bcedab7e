package model

import "github.com/shopspring/decimal"

// ShippingBreakdown details how the freight of a cart was computed.
type ShippingBreakdown struct {
	TaxableWeight    decimal.Decimal `json:"taxable_weight"`
	BaseFreight      decimal.Decimal `json:"base_freight"`
	HandlingFee      decimal.Decimal `json:"handling_fee"`
	FragileSurcharge decimal.Decimal `json:"fragile_surcharge"`
	RegionFactor     decimal.Decimal `json:"region_factor"`
	TierFactor       decimal.Decimal `json:"tier_factor"`
	Total            decimal.Decimal `json:"total"`
}

// Quote is the full price breakdown of a cart for a region and tier.
// Intermediate amounts keep full precision; Total is rounded to cents.
type Quote struct {
	Region             Region            `json:"region"`
	Tier               CustomerTier      `json:"tier"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	CategoryDiscount   decimal.Decimal   `json:"category_discount"`
	ValueDiscount      decimal.Decimal   `json:"value_discount"`
	DiscountedSubtotal decimal.Decimal   `json:"discounted_subtotal"`
	Shipping           ShippingBreakdown `json:"shipping"`
	Total              decimal.Decimal   `json:"total"`
}
