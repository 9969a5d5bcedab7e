package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/mocks"
	"github.com/guttosm/checkout-service/internal/service"
)

func TestCheckoutHandler_Checkout(t *testing.T) {
	validBody := `{"cart_id":"cart-1","customer_id":"customer-1"}`

	tests := []struct {
		name            string
		body            string
		authenticatedAs string
		lang            string
		checkoutErr     error
		skipService     bool
		expectedCode    int
		check           func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:         "completes the checkout",
			body:         validBody,
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp struct {
					Data dto.CheckoutResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Data.Success)
				assert.Equal(t, "tx-1", resp.Data.TransactionID)
				assert.Equal(t, "553.65", resp.Data.Amount)
				assert.Equal(t, "Checkout completed successfully", resp.Data.Message)
			},
		},
		{
			name:         "success message follows Accept-Language",
			body:         validBody,
			lang:         "pt-BR",
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Compra finalizada com sucesso")
			},
		},
		{
			name:         "malformed body",
			body:         `{"cart_id":`,
			skipService:  true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "blank customer",
			body:         `{"cart_id":"cart-1","customer_id":" "}`,
			skipService:  true,
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "customer_id", decodeError(t, w).Details["field"])
			},
		},
		{
			name:            "token for another customer",
			body:            validBody,
			authenticatedAs: "customer-2",
			skipService:     true,
			expectedCode:    http.StatusForbidden,
		},
		{
			name:         "items unavailable",
			body:         validBody,
			checkoutErr:  &service.CheckoutError{Kind: service.ErrUnavailable, Step: "check_availability"},
			expectedCode: http.StatusConflict,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeConflict, resp.Error)
				assert.Equal(t, "unavailable", resp.Details["kind"])
			},
		},
		{
			name:         "payment declined",
			body:         validBody,
			checkoutErr:  &service.CheckoutError{Kind: service.ErrPaymentDeclined, Step: "authorize_payment"},
			expectedCode: http.StatusPaymentRequired,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, dto.ErrCodePaymentDeclined, decodeError(t, w).Error)
			},
		},
		{
			name:         "stock decrement compensated",
			body:         validBody,
			checkoutErr:  &service.CheckoutError{Kind: service.ErrStockDecrement, Step: "decrement_stock", Compensated: true},
			expectedCode: http.StatusConflict,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, "stock_decrement", resp.Details["kind"])
				assert.Equal(t, "true", resp.Details["compensated"])
				assert.Contains(t, resp.Message, "was cancelled")
			},
		},
		{
			name:         "stock decrement not compensated",
			body:         validBody,
			checkoutErr:  &service.CheckoutError{Kind: service.ErrStockDecrement, Step: "decrement_stock"},
			expectedCode: http.StatusConflict,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, "false", resp.Details["compensated"])
				assert.Contains(t, resp.Message, "pending cancellation")
			},
		},
		{
			name:         "storage circuit open",
			body:         validBody,
			checkoutErr:  fmt.Errorf("resolve_customer: %w", circuitbreaker.ErrCircuitOpen),
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name:         "deadline exceeded",
			body:         validBody,
			checkoutErr:  fmt.Errorf("resolve_cart: %w", context.DeadlineExceeded),
			expectedCode: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkout := new(mocks.MockCheckoutService)
			if !tt.skipService {
				result := model.CheckoutResult{}
				if tt.checkoutErr == nil {
					result = model.CheckoutResult{Success: true, TransactionID: "tx-1", Message: "ok", Amount: model.MustMoney("553.65")}
				}
				checkout.On("Checkout", mock.MatchedBy(func(ctx context.Context) bool {
					return service.RequestIDFromContext(ctx) != ""
				}), "cart-1", "customer-1").Return(result, tt.checkoutErr)
			}

			r := newTestEngine(tt.authenticatedAs)
			r.POST("/api/checkout", NewCheckoutHandler(checkout).Checkout)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.lang != "" {
				req.Header.Set("Accept-Language", tt.lang)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
			checkout.AssertExpectations(t)
		})
	}
}
