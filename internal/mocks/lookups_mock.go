// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCustomerLookup struct {
	mock.Mock
}

func (m *MockCustomerLookup) FindCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

type MockCartLookup struct {
	mock.Mock
}

func (m *MockCartLookup) FindCart(ctx context.Context, cartID string) (*model.Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

type MockCheckoutRecorder struct {
	mock.Mock
}

func (m *MockCheckoutRecorder) Record(ctx context.Context, record *model.CheckoutRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
