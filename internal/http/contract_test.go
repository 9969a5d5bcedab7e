//go:build contract

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/mocks"
	"github.com/guttosm/checkout-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	checkout := new(mocks.MockCheckoutService)
	checkout.On("Checkout", mock.Anything, "cart-ok", "customer-1").
		Return(model.CheckoutResult{Success: true, TransactionID: "tx-1", Amount: model.MustMoney("553.65")}, nil)
	checkout.On("Checkout", mock.Anything, "cart-declined", "customer-1").
		Return(model.CheckoutResult{}, &service.CheckoutError{Kind: service.ErrPaymentDeclined, Step: "authorize_payment"})

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Quotes = service.NewQuoteService(service.NewPricingEngine(), nil, nil)
	cfg.Checkout = checkout
	router := NewRouter(NewHealthHandler(), cfg)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/quotes - Success 200",
			method:         http.MethodPost,
			path:           "/api/quotes",
			body:           quoteBody,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")

				data, ok := resp.Data.(map[string]interface{})
				require.True(t, ok, "Data must be a quote object")
				for _, field := range []string{"region", "tier", "subtotal", "category_discount", "value_discount", "discounted_subtotal", "shipping", "total"} {
					assert.Contains(t, data, field)
				}
				assert.Equal(t, "553.65", data["total"], "Amounts must be decimal strings")

				shipping, ok := data["shipping"].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"taxable_weight", "base_freight", "handling_fee", "fragile_surcharge", "region_factor", "tier_factor", "total"} {
					assert.Contains(t, shipping, field)
				}
			},
		},
		{
			name:           "POST /api/quotes - Validation 400",
			method:         http.MethodPost,
			path:           "/api/quotes",
			body:           `{"region":"SOUTH","tier":"SILVER","items":[]}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.Equal(t, "validation", resp.Details["kind"])
				assert.NotEmpty(t, resp.Details["field"])
			},
		},
		{
			name:           "POST /api/checkout - Success 200",
			method:         http.MethodPost,
			path:           "/api/checkout",
			body:           `{"cart_id":"cart-ok","customer_id":"customer-1"}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp struct {
					Data map[string]interface{} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, true, resp.Data["success"])
				assert.Equal(t, "tx-1", resp.Data["transaction_id"])
				assert.Equal(t, "553.65", resp.Data["amount"])
				assert.NotEmpty(t, resp.Data["message"])
			},
		},
		{
			name:           "POST /api/checkout - Payment declined 402",
			method:         http.MethodPost,
			path:           "/api/checkout",
			body:           `{"cart_id":"cart-declined","customer_id":"customer-1"}`,
			expectedStatus: http.StatusPaymentRequired,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodePaymentDeclined, resp.Error)
				assert.Equal(t, "payment_declined", resp.Details["kind"])
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.method, tt.path, tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}
