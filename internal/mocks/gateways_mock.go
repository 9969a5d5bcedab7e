// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockInventoryGateway struct {
	mock.Mock
}

func (m *MockInventoryGateway) CheckAvailability(ctx context.Context, productIDs []string, quantities []int64) (model.Availability, error) {
	args := m.Called(ctx, productIDs, quantities)
	return args.Get(0).(model.Availability), args.Error(1)
}

func (m *MockInventoryGateway) DecrementStock(ctx context.Context, productIDs []string, quantities []int64) (model.StockDecrement, error) {
	args := m.Called(ctx, productIDs, quantities)
	return args.Get(0).(model.StockDecrement), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) AuthorizePayment(ctx context.Context, customerID string, amount decimal.Decimal) (model.PaymentAuthorization, error) {
	args := m.Called(ctx, customerID, amount)
	return args.Get(0).(model.PaymentAuthorization), args.Error(1)
}

func (m *MockPaymentGateway) CancelPayment(ctx context.Context, customerID, transactionID string) error {
	args := m.Called(ctx, customerID, transactionID)
	return args.Error(0)
}
