package service

import (
	"errors"
	"testing"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productOption func(*model.Product)

func withCategory(c model.ProductCategory) productOption {
	return func(p *model.Product) { p.Category = c }
}

func withDimensions(l, w, h string) productOption {
	return func(p *model.Product) {
		p.Length = model.MoneyPtr(l)
		p.Width = model.MoneyPtr(w)
		p.Height = model.MoneyPtr(h)
	}
}

func fragile() productOption {
	return func(p *model.Product) { p.Fragile = true }
}

func lineItem(id, price, weight string, qty int64, opts ...productOption) model.LineItem {
	p := model.Product{
		ID:       id,
		Name:     "product " + id,
		Price:    model.MoneyPtr(price),
		Weight:   model.MoneyPtr(weight),
		Category: model.CategoryOther,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return model.LineItem{Product: p, Quantity: qty}
}

func cartOf(items ...model.LineItem) *model.Cart {
	return &model.Cart{ID: "cart-1", CustomerID: "customer-1", Items: items}
}

func TestPricingEngine_ComputeTotal(t *testing.T) {
	engine := NewPricingEngine()

	tests := []struct {
		name     string
		cart     *model.Cart
		region   model.Region
		tier     model.CustomerTier
		expected string
	}{
		// Worked examples.
		{
			name:     "value discount with light parcel, south, silver",
			cart:     cartOf(lineItem("p1", "600.00", "7", 1)),
			region:   model.RegionSouth,
			tier:     model.TierSilver,
			expected: "553.65",
		},
		{
			name:     "heavy fragile parcel, central west, bronze",
			cart:     cartOf(lineItem("p1", "100.00", "27.5", 2, fragile())),
			region:   model.RegionCentralWest,
			tier:     model.TierBronze,
			expected: "688.40",
		},
		{
			name:     "gold waives freight on top value tier",
			cart:     cartOf(lineItem("p1", "1500.00", "15", 1)),
			region:   model.RegionNorth,
			tier:     model.TierGold,
			expected: "1200.00",
		},
		{
			name:     "free item with no weight",
			cart:     cartOf(lineItem("p1", "0", "0", 1)),
			region:   model.RegionNortheast,
			tier:     model.TierGold,
			expected: "0.00",
		},
		{
			name:     "single unit under every threshold",
			cart:     cartOf(lineItem("p1", "10.00", "0", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "10.00",
		},

		// Weight band boundaries.
		{
			name:     "weight 5.00 is free",
			cart:     cartOf(lineItem("p1", "0.01", "5.00", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "0.01",
		},
		{
			name:     "weight 5.01 enters 2.00 band",
			cart:     cartOf(lineItem("p1", "0.01", "5.01", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "22.03",
		},
		{
			name:     "weight 10.00 stays in 2.00 band",
			cart:     cartOf(lineItem("p1", "0.01", "10.00", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "32.01",
		},
		{
			name:     "weight 10.01 enters 4.00 band",
			cart:     cartOf(lineItem("p1", "0.01", "10.01", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "52.05",
		},
		{
			name:     "weight 50.00 stays in 4.00 band",
			cart:     cartOf(lineItem("p1", "0.01", "50.00", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "212.01",
		},
		{
			name:     "weight 50.01 enters 7.00 band",
			cart:     cartOf(lineItem("p1", "0.01", "50.01", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "362.08",
		},

		// Value tier boundaries.
		{
			name:     "subtotal 500.00 has no value discount",
			cart:     cartOf(lineItem("p1", "500.00", "0", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "500.00",
		},
		{
			name:     "subtotal 500.01 gets 10 percent",
			cart:     cartOf(lineItem("p1", "500.01", "0", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "450.01",
		},
		{
			name:     "subtotal 1000.00 gets 10 percent",
			cart:     cartOf(lineItem("p1", "1000.00", "0", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "900.00",
		},
		{
			name:     "subtotal 1000.01 gets 20 percent",
			cart:     cartOf(lineItem("p1", "1000.01", "0", 1)),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "800.01",
		},

		// Category volume discount.
		{
			name:     "two units of a category get nothing",
			cart:     cartOf(lineItem("p1", "10.00", "0", 2, withCategory(model.CategoryBook))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "20.00",
		},
		{
			name:     "three units of a category get 5 percent",
			cart:     cartOf(lineItem("p1", "10.00", "0", 3, withCategory(model.CategoryBook))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "28.50",
		},
		{
			name:     "five units of a category get 10 percent",
			cart:     cartOf(lineItem("p1", "10.00", "0", 5, withCategory(model.CategoryBook))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "45.00",
		},
		{
			name:     "eight units of a category get 15 percent",
			cart:     cartOf(lineItem("p1", "10.00", "0", 8, withCategory(model.CategoryBook))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "68.00",
		},
		{
			name: "quantity is summed across lines of the same category",
			cart: cartOf(
				lineItem("p1", "10.00", "0", 2, withCategory(model.CategoryToy)),
				lineItem("p2", "20.00", "0", 1, withCategory(model.CategoryToy)),
			),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "38.00",
		},
		{
			name: "categories below threshold get nothing even with high total quantity",
			cart: cartOf(
				lineItem("p1", "10.00", "0", 2, withCategory(model.CategoryBook)),
				lineItem("p2", "10.00", "0", 2, withCategory(model.CategoryToy)),
				lineItem("p3", "10.00", "0", 2, withCategory(model.CategoryFood)),
			),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "60.00",
		},
		{
			name: "discount applies only to the qualifying category subtotal",
			cart: cartOf(
				lineItem("p1", "10.00", "0", 3, withCategory(model.CategoryBook)),
				lineItem("p2", "100.00", "0", 1, withCategory(model.CategoryToy)),
			),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "128.50",
		},
		{
			name:     "value tier uses the subtotal after category discount",
			cart:     cartOf(lineItem("p1", "100.00", "0", 8, withCategory(model.CategoryElectronics))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "612.00",
		},
		{
			name:     "category discount can drop the order below a value tier",
			cart:     cartOf(lineItem("p1", "175.00", "0", 3, withCategory(model.CategoryFurniture))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "448.88",
		},

		// Dimensional weight.
		{
			name:     "dimensional weight wins over physical weight",
			cart:     cartOf(lineItem("p1", "0.01", "1", 1, withDimensions("50", "40", "30"))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "32.01",
		},
		{
			name:     "physical weight wins over dimensional weight",
			cart:     cartOf(lineItem("p1", "0.01", "12", 1, withDimensions("50", "40", "30"))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "60.01",
		},
		{
			name: "missing dimension means no dimensional weight",
			cart: cartOf(lineItem("p1", "0.01", "1", 1, func(p *model.Product) {
				p.Length = model.MoneyPtr("50")
				p.Width = model.MoneyPtr("40")
			})),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "0.01",
		},
		{
			name:     "dimensional weight is rounded per unit before quantity",
			cart:     cartOf(lineItem("p1", "0", "0", 30, withDimensions("10", "10", "10"))),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "22.20",
		},

		// Fragile, region and tier.
		{
			name:     "fragile surcharge applies in the free band without handling fee",
			cart:     cartOf(lineItem("p1", "0", "1", 2, fragile())),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "10.00",
		},
		{
			name:     "fragile surcharge is scaled by region and tier",
			cart:     cartOf(lineItem("p1", "0", "1", 2, fragile())),
			region:   model.RegionNorth,
			tier:     model.TierSilver,
			expected: "6.50",
		},
		{
			name:     "region and tier multiply freight",
			cart:     cartOf(lineItem("p1", "0.01", "10.00", 1)),
			region:   model.RegionNortheast,
			tier:     model.TierSilver,
			expected: "17.61",
		},
		{
			name:     "gold pays no freight in the heaviest band",
			cart:     cartOf(lineItem("p1", "10.00", "80", 1, fragile())),
			region:   model.RegionNorth,
			tier:     model.TierGold,
			expected: "10.00",
		},
		{
			name: "weight is summed across lines before picking the band",
			cart: cartOf(
				lineItem("p1", "0", "3", 1),
				lineItem("p2", "0", "3", 1),
			),
			region:   model.RegionSoutheast,
			tier:     model.TierBronze,
			expected: "24.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := engine.ComputeTotal(tt.cart, tt.region, tt.tier)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, total.StringFixed(2))
		})
	}
}

func TestPricingEngine_ComputeTotal_Validation(t *testing.T) {
	engine := NewPricingEngine()
	valid := func() *model.Cart { return cartOf(lineItem("p1", "10.00", "1", 1)) }

	tests := []struct {
		name   string
		cart   func() *model.Cart
		region model.Region
		tier   model.CustomerTier
		field  string
	}{
		{
			name:   "nil cart",
			cart:   func() *model.Cart { return nil },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items",
		},
		{
			name:   "empty cart",
			cart:   func() *model.Cart { return cartOf() },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items",
		},
		{
			name:   "missing region",
			cart:   valid,
			region: "", tier: model.TierGold,
			field: "region",
		},
		{
			name:   "unknown region",
			cart:   valid,
			region: "MARS", tier: model.TierGold,
			field: "region",
		},
		{
			name:   "missing tier",
			cart:   valid,
			region: model.RegionSouth, tier: "",
			field: "tier",
		},
		{
			name:   "unknown tier",
			cart:   valid,
			region: model.RegionSouth, tier: "DIAMOND",
			field: "tier",
		},
		{
			name:   "zero quantity",
			cart:   func() *model.Cart { return cartOf(lineItem("p1", "10.00", "1", 0)) },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].quantity",
		},
		{
			name:   "negative quantity",
			cart:   func() *model.Cart { return cartOf(lineItem("p1", "10.00", "1", -1)) },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].quantity",
		},
		{
			name: "missing price",
			cart: func() *model.Cart {
				c := valid()
				c.Items[0].Product.Price = nil
				return c
			},
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].product.price",
		},
		{
			name:   "negative price",
			cart:   func() *model.Cart { return cartOf(lineItem("p1", "-0.01", "1", 1)) },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].product.price",
		},
		{
			name: "missing weight",
			cart: func() *model.Cart {
				c := valid()
				c.Items[0].Product.Weight = nil
				return c
			},
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].product.weight",
		},
		{
			name:   "negative weight",
			cart:   func() *model.Cart { return cartOf(lineItem("p1", "1", "-1", 1)) },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].product.weight",
		},
		{
			name:   "negative length",
			cart:   func() *model.Cart { return cartOf(lineItem("p1", "1", "1", 1, withDimensions("-1", "1", "1"))) },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].product.length",
		},
		{
			name: "negative height with other dimensions absent",
			cart: func() *model.Cart {
				return cartOf(lineItem("p1", "1", "1", 1, func(p *model.Product) { p.Height = model.MoneyPtr("-5") }))
			},
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].product.height",
		},
		{
			name:   "unknown category",
			cart:   func() *model.Cart { return cartOf(lineItem("p1", "1", "1", 1, withCategory("SPACESHIP"))) },
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[0].product.category",
		},
		{
			name: "invalid second line is reported with its index",
			cart: func() *model.Cart {
				return cartOf(lineItem("p1", "1", "1", 1), lineItem("p2", "1", "1", 0))
			},
			region: model.RegionSouth, tier: model.TierGold,
			field: "items[1].quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := engine.ComputeTotal(tt.cart(), tt.region, tt.tier)

			require.Error(t, err)
			assert.True(t, total.IsZero())
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestPricingEngine_Quote(t *testing.T) {
	engine := NewPricingEngine()
	cart := cartOf(
		lineItem("p1", "100.00", "27.5", 2, fragile(), withCategory(model.CategoryElectronics)),
	)

	q, err := engine.Quote(cart, model.RegionCentralWest, model.TierBronze)
	require.NoError(t, err)

	assert.Equal(t, model.RegionCentralWest, q.Region)
	assert.Equal(t, model.TierBronze, q.Tier)
	assert.Equal(t, "200.00", q.Subtotal.StringFixed(2))
	assert.True(t, q.CategoryDiscount.IsZero())
	assert.True(t, q.ValueDiscount.IsZero())
	assert.Equal(t, "200.00", q.DiscountedSubtotal.StringFixed(2))
	assert.Equal(t, "55.00", q.Shipping.TaxableWeight.StringFixed(2))
	assert.Equal(t, "385.00", q.Shipping.BaseFreight.StringFixed(2))
	assert.Equal(t, "12.00", q.Shipping.HandlingFee.StringFixed(2))
	assert.Equal(t, "10.00", q.Shipping.FragileSurcharge.StringFixed(2))
	assert.Equal(t, "1.20", q.Shipping.RegionFactor.StringFixed(2))
	assert.Equal(t, "1.00", q.Shipping.TierFactor.StringFixed(2))
	assert.Equal(t, "488.40", q.Shipping.Total.StringFixed(2))
	assert.Equal(t, "688.40", q.Total.StringFixed(2))
}

func TestPricingEngine_DoesNotMutateCart(t *testing.T) {
	engine := NewPricingEngine()
	cart := cartOf(
		lineItem("p2", "10.00", "3", 4, withCategory(model.CategoryToy)),
		lineItem("p1", "5.00", "1", 1, withCategory(model.CategoryBook)),
	)
	before := *cart
	beforeItems := append([]model.LineItem(nil), cart.Items...)

	first, err := engine.ComputeTotal(cart, model.RegionNorth, model.TierSilver)
	require.NoError(t, err)
	second, err := engine.ComputeTotal(cart, model.RegionNorth, model.TierSilver)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, before.ID, cart.ID)
	assert.Equal(t, beforeItems, cart.Items)
}

func TestPricingEngine_ItemOrderDoesNotMatter(t *testing.T) {
	engine := NewPricingEngine()
	a := lineItem("a", "12.34", "2", 3, withCategory(model.CategoryFood))
	b := lineItem("b", "99.99", "4.5", 5, withCategory(model.CategoryClothing), fragile())
	c := lineItem("c", "250.00", "1", 1, withCategory(model.CategoryFood), withDimensions("60", "50", "40"))

	forward, err := engine.ComputeTotal(cartOf(a, b, c), model.RegionSouth, model.TierBronze)
	require.NoError(t, err)
	backward, err := engine.ComputeTotal(cartOf(c, b, a), model.RegionSouth, model.TierBronze)
	require.NoError(t, err)

	assert.Equal(t, forward.StringFixed(2), backward.StringFixed(2))
}

func TestBaseFreight(t *testing.T) {
	tests := []struct {
		weight   string
		expected string
	}{
		{"0", "0.00"},
		{"5", "0.00"},
		{"5.01", "10.02"},
		{"10", "20.00"},
		{"10.01", "40.04"},
		{"50", "200.00"},
		{"50.01", "350.07"},
		{"100", "700.00"},
	}

	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			assert.Equal(t, tt.expected, baseFreight(model.MustMoney(tt.weight)).StringFixed(2))
		})
	}
}

func TestCategoryVolumeRate(t *testing.T) {
	tests := []struct {
		quantity int64
		expected string
	}{
		{1, "0"}, {2, "0"}, {3, "0.05"}, {4, "0.05"}, {5, "0.1"}, {7, "0.1"}, {8, "0.15"}, {100, "0.15"},
	}

	for _, tt := range tests {
		assert.True(t, model.MustMoney(tt.expected).Equal(categoryVolumeRate(tt.quantity)), "quantity %d", tt.quantity)
	}
}

func TestDimensionalWeight(t *testing.T) {
	p := model.Product{}
	withDimensions("10", "10", "10")(&p)
	assert.Equal(t, "0.17", dimensionalWeight(p).String())

	withDimensions("50", "40", "30")(&p)
	assert.Equal(t, "10", dimensionalWeight(p).String())

	assert.True(t, dimensionalWeight(model.Product{}).IsZero())
}
