package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/checkout-service/internal/cache"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerCache() *cache.TTLCache[string, model.Customer] {
	return cache.NewTTLCache[string, model.Customer]("customers_test", 10, time.Minute)
}

func TestCachedCustomerLookup_FindCustomer(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(m *mocks.MockCustomerLookup)
		calls         int
		expectedNil   bool
		expectedError bool
		expectedHits  int
	}{
		{
			name: "second lookup is served from cache",
			setup: func(m *mocks.MockCustomerLookup) {
				m.On("FindCustomer", mock.Anything, testCustomerID).Return(testCustomer(), nil).Once()
			},
			calls:        1,
			expectedHits: 1,
		},
		{
			name: "missing customer is not cached",
			setup: func(m *mocks.MockCustomerLookup) {
				m.On("FindCustomer", mock.Anything, testCustomerID).Return(nil, nil).Twice()
			},
			calls:       2,
			expectedNil: true,
		},
		{
			name: "errors are not cached",
			setup: func(m *mocks.MockCustomerLookup) {
				m.On("FindCustomer", mock.Anything, testCustomerID).Return(nil, errors.New("db down")).Twice()
			},
			calls:         2,
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := new(mocks.MockCustomerLookup)
			tt.setup(next)
			c := newCustomerCache()
			defer c.Stop()
			lookup := NewCachedCustomerLookup(next, c)

			for i := 0; i < 2; i++ {
				customer, err := lookup.FindCustomer(context.Background(), testCustomerID)
				if tt.expectedError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
				if tt.expectedNil {
					assert.Nil(t, customer)
				} else {
					require.NotNil(t, customer)
					assert.Equal(t, model.TierSilver, customer.Tier)
				}
			}

			next.AssertNumberOfCalls(t, "FindCustomer", tt.calls)
			assert.Equal(t, int64(tt.expectedHits), c.Metrics().Hits)
		})
	}
}

func TestCachedCustomerLookup_Invalidate(t *testing.T) {
	next := new(mocks.MockCustomerLookup)
	next.On("FindCustomer", mock.Anything, testCustomerID).Return(testCustomer(), nil).Twice()
	c := newCustomerCache()
	defer c.Stop()
	lookup := NewCachedCustomerLookup(next, c)

	_, err := lookup.FindCustomer(context.Background(), testCustomerID)
	require.NoError(t, err)
	lookup.Invalidate(testCustomerID)
	_, err = lookup.FindCustomer(context.Background(), testCustomerID)
	require.NoError(t, err)

	next.AssertExpectations(t)
}

func TestCachedCustomerLookup_ReturnsCopies(t *testing.T) {
	next := new(mocks.MockCustomerLookup)
	next.On("FindCustomer", mock.Anything, testCustomerID).Return(testCustomer(), nil).Once()
	c := newCustomerCache()
	defer c.Stop()
	lookup := NewCachedCustomerLookup(next, c)

	first, err := lookup.FindCustomer(context.Background(), testCustomerID)
	require.NoError(t, err)
	first.Tier = model.TierGold

	second, err := lookup.FindCustomer(context.Background(), testCustomerID)
	require.NoError(t, err)
	assert.Equal(t, model.TierSilver, second.Tier)
}
