package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuoteService_Quote(t *testing.T) {
	svc := NewQuoteService(NewPricingEngine(), nil, nil)

	q, err := svc.Quote(testCart(), model.RegionSouth, model.TierSilver)

	require.NoError(t, err)
	assert.Equal(t, "553.65", q.Total.StringFixed(2))
	assert.Equal(t, "540.00", q.DiscountedSubtotal.StringFixed(2))
	assert.Equal(t, "60.00", q.ValueDiscount.StringFixed(2))
}

func TestQuoteService_Quote_Validation(t *testing.T) {
	svc := NewQuoteService(NewPricingEngine(), nil, nil)

	_, err := svc.Quote(testCart(), "ATLANTIS", model.TierSilver)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuoteService_QuoteStoredCart(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(customers *mocks.MockCustomerLookup, carts *mocks.MockCartLookup)
		expectedTotal string
		expectedErr   error
		expectedKind  string
	}{
		{
			name: "prices with the owner's region and tier",
			setup: func(customers *mocks.MockCustomerLookup, carts *mocks.MockCartLookup) {
				customers.On("FindCustomer", mock.Anything, testCustomerID).Return(testCustomer(), nil)
				carts.On("FindCart", mock.Anything, testCartID).Return(testCart(), nil)
			},
			expectedTotal: "553.65",
		},
		{
			name: "unknown customer",
			setup: func(customers *mocks.MockCustomerLookup, _ *mocks.MockCartLookup) {
				customers.On("FindCustomer", mock.Anything, testCustomerID).Return(nil, nil)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "cart of another customer",
			setup: func(customers *mocks.MockCustomerLookup, carts *mocks.MockCartLookup) {
				cart := testCart()
				cart.CustomerID = "other"
				customers.On("FindCustomer", mock.Anything, testCustomerID).Return(testCustomer(), nil)
				carts.On("FindCart", mock.Anything, testCartID).Return(cart, nil)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "cart lookup failure",
			setup: func(customers *mocks.MockCustomerLookup, carts *mocks.MockCartLookup) {
				customers.On("FindCustomer", mock.Anything, testCustomerID).Return(testCustomer(), nil)
				carts.On("FindCart", mock.Anything, testCartID).Return(nil, errors.New("timeout"))
			},
			expectedKind: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers := new(mocks.MockCustomerLookup)
			carts := new(mocks.MockCartLookup)
			tt.setup(customers, carts)
			svc := NewQuoteService(NewPricingEngine(), customers, carts)

			q, err := svc.QuoteStoredCart(context.Background(), testCartID, testCustomerID)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectedKind != "":
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, ErrorKind(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, q.Total.StringFixed(2))
				assert.Equal(t, model.RegionSouth, q.Region)
				assert.Equal(t, model.TierSilver, q.Tier)
			}
			customers.AssertExpectations(t)
			carts.AssertExpectations(t)
		})
	}
}

func TestQuoteService_QuoteStoredCart_WithoutStore(t *testing.T) {
	svc := NewQuoteService(NewPricingEngine(), nil, nil)

	_, err := svc.QuoteStoredCart(context.Background(), testCartID, testCustomerID)

	assert.ErrorIs(t, err, ErrNotFound)
}
