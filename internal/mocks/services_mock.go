// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPricingEngine struct {
	mock.Mock
}

func (m *MockPricingEngine) ComputeTotal(cart *model.Cart, region model.Region, tier model.CustomerTier) (decimal.Decimal, error) {
	args := m.Called(cart, region, tier)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPricingEngine) Quote(cart *model.Cart, region model.Region, tier model.CustomerTier) (model.Quote, error) {
	args := m.Called(cart, region, tier)
	return args.Get(0).(model.Quote), args.Error(1)
}

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, cartID, customerID string) (model.CheckoutResult, error) {
	args := m.Called(ctx, cartID, customerID)
	return args.Get(0).(model.CheckoutResult), args.Error(1)
}

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(cart *model.Cart, region model.Region, tier model.CustomerTier) (model.Quote, error) {
	args := m.Called(cart, region, tier)
	return args.Get(0).(model.Quote), args.Error(1)
}

func (m *MockQuoteService) QuoteStoredCart(ctx context.Context, cartID, customerID string) (model.Quote, error) {
	args := m.Called(ctx, cartID, customerID)
	return args.Get(0).(model.Quote), args.Error(1)
}
