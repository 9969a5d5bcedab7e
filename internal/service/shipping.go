package service

import (
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	dimensionalDivisor = decimal.NewFromInt(6000)
	handlingFee        = decimal.RequireFromString("12.00")
	fragileSurcharge   = decimal.RequireFromString("5.00")
)

// weightBands are evaluated in order; the first band whose upper bound is
// not exceeded sets the per-kg rate. The last band has no upper bound.
var weightBands = []struct {
	upTo *decimal.Decimal
	rate decimal.Decimal
}{
	{model.MoneyPtr("5"), decimal.Zero},
	{model.MoneyPtr("10"), decimal.RequireFromString("2.00")},
	{model.MoneyPtr("50"), decimal.RequireFromString("4.00")},
	{nil, decimal.RequireFromString("7.00")},
}

// dimensionalWeight converts a product's volume in cm3 to kg, rounded half-up
// to two places. Products missing any dimension have no dimensional weight.
func dimensionalWeight(p model.Product) decimal.Decimal {
	if !p.HasDimensions() {
		return decimal.Zero
	}
	volume := p.Length.Mul(*p.Width).Mul(*p.Height)
	return volume.DivRound(dimensionalDivisor, model.MoneyScale)
}

// taxableWeight sums max(physical, dimensional) x quantity over the items.
func taxableWeight(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		unit := decimal.Max(*item.Product.Weight, dimensionalWeight(item.Product))
		total = total.Add(unit.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// baseFreight charges the whole weight at the rate of the band it falls in.
func baseFreight(weight decimal.Decimal) decimal.Decimal {
	for _, band := range weightBands {
		if band.upTo == nil || weight.LessThanOrEqual(*band.upTo) {
			return weight.Mul(band.rate)
		}
	}
	return decimal.Zero
}

// fragileCharge is 5.00 per fragile unit regardless of weight band.
func fragileCharge(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product.Fragile {
			total = total.Add(fragileSurcharge.Mul(decimal.NewFromInt(item.Quantity)))
		}
	}
	return total
}

// shipping computes the freight breakdown. Region and tier must be valid.
func shipping(items []model.LineItem, region model.Region, tier model.CustomerTier) model.ShippingBreakdown {
	weight := taxableWeight(items)
	base := baseFreight(weight)

	handling := decimal.Zero
	if base.IsPositive() {
		handling = handlingFee
	}
	fragile := fragileCharge(items)

	regionFactor, _ := region.ShippingFactor()
	tierFactor, _ := tier.ShippingFactor()

	total := base.Add(handling).Add(fragile).Mul(regionFactor).Mul(tierFactor)

	return model.ShippingBreakdown{
		TaxableWeight:    weight,
		BaseFreight:      base,
		HandlingFee:      handling,
		FragileSurcharge: fragile,
		RegionFactor:     regionFactor,
		TierFactor:       tierFactor,
		Total:            total,
	}
}
