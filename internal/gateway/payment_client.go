// Package gateway adapts external systems to the checkout service's gateway interfaces.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/guttosm/checkout-service/internal/service"
)

const (
	paymentGatewayName = "payment"
	requestIDHeader    = "X-Request-ID"
	maxErrorBodyBytes  = 4 << 10
)

var _ service.PaymentGateway = (*HTTPPaymentClient)(nil)

// PaymentStatusError is returned when the provider answers with an unexpected status.
type PaymentStatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *PaymentStatusError) Error() string {
	return fmt.Sprintf("payment %s returned status %d", e.Operation, e.StatusCode)
}

// PaymentClientConfig configures HTTPPaymentClient.
type PaymentClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Currency is sent with every authorization. Empty defaults to USD.
	Currency string
}

// HTTPPaymentClient talks to the payment provider over HTTP.
//
//	POST {base}/api/v1/authorizations              authorize, 200/201 authorized, 402 declined
//	POST {base}/api/v1/authorizations/{id}/cancel  cancel, 200/204 done, 409 already cancelled
type HTTPPaymentClient struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
}

// PaymentClientOption configures an HTTPPaymentClient.
type PaymentClientOption func(*HTTPPaymentClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) PaymentClientOption {
	return func(p *HTTPPaymentClient) {
		if c != nil {
			p.httpClient = c
		}
	}
}

// WithCircuitBreaker guards provider calls with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) PaymentClientOption {
	return func(p *HTTPPaymentClient) {
		p.cb = cb
	}
}

// NewHTTPPaymentClient creates a new HTTP-based payment client.
func NewHTTPPaymentClient(cfg PaymentClientConfig, opts ...PaymentClientOption) *HTTPPaymentClient {
	currency := cfg.Currency
	if currency == "" {
		currency = "USD"
	}
	c := &HTTPPaymentClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		currency:   currency,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCircuitBreaker returns the circuit breaker guarding the client, if any.
func (c *HTTPPaymentClient) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.cb
}

type authorizeRequest struct {
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

type authorizeResponse struct {
	Authorized    bool   `json:"authorized"`
	TransactionID string `json:"transaction_id"`
}

type cancelRequest struct {
	CustomerID string `json:"customer_id"`
}

// AuthorizePayment implements service.PaymentGateway.
func (c *HTTPPaymentClient) AuthorizePayment(ctx context.Context, customerID string, amount decimal.Decimal) (model.PaymentAuthorization, error) {
	logger := log.With().
		Str("request_id", service.RequestIDFromContext(ctx)).
		Str("customer_id", customerID).
		Str("amount", amount.StringFixed(2)).
		Logger()
	logger.Debug().Msg("Authorizing payment")

	var auth model.PaymentAuthorization
	err := c.guard(ctx, func() error {
		resp, err := c.post(ctx, "/api/v1/authorizations", authorizeRequest{
			CustomerID: customerID,
			Amount:     amount.StringFixed(2),
			Currency:   c.currency,
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			var body authorizeResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				return fmt.Errorf("decode authorization (status %d): %w: %w", resp.StatusCode, service.ErrPaymentOutcomeUnknown, err)
			}
			if body.Authorized && body.TransactionID == "" {
				return fmt.Errorf("authorization without transaction id: %w", service.ErrPaymentOutcomeUnknown)
			}
			auth = model.PaymentAuthorization{Authorized: body.Authorized, TransactionID: body.TransactionID}
			return nil
		case http.StatusPaymentRequired:
			auth = model.PaymentAuthorization{Authorized: false}
			return nil
		default:
			return statusError("authorize", resp)
		}
	})

	result := "authorized"
	switch {
	case err != nil:
		result = "error"
		logger.Error().Err(err).Msg("Payment authorization failed")
	case !auth.Authorized:
		result = "declined"
		logger.Info().Msg("Payment declined")
	default:
		logger.Info().Str("transaction_id", auth.TransactionID).Msg("Payment authorized")
	}
	metrics.RecordGatewayRequest(paymentGatewayName, "authorize", result)

	if err != nil {
		return model.PaymentAuthorization{}, err
	}
	return auth, nil
}

// CancelPayment implements service.PaymentGateway.
func (c *HTTPPaymentClient) CancelPayment(ctx context.Context, customerID, transactionID string) error {
	logger := log.With().
		Str("request_id", service.RequestIDFromContext(ctx)).
		Str("customer_id", customerID).
		Str("transaction_id", transactionID).
		Logger()

	err := c.guard(ctx, func() error {
		path := "/api/v1/authorizations/" + url.PathEscape(transactionID) + "/cancel"
		resp, err := c.post(ctx, path, cancelRequest{CustomerID: customerID})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK, http.StatusNoContent, http.StatusConflict:
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		default:
			return statusError("cancel", resp)
		}
	})

	if err != nil {
		metrics.RecordGatewayRequest(paymentGatewayName, "cancel", "error")
		logger.Error().Err(err).Msg("Payment cancellation failed")
		return err
	}
	metrics.RecordGatewayRequest(paymentGatewayName, "cancel", "cancelled")
	logger.Info().Msg("Payment cancelled")
	return nil
}

func (c *HTTPPaymentClient) guard(ctx context.Context, fn func() error) error {
	if c.cb == nil {
		return fn()
	}
	return c.cb.Execute(ctx, fn)
}

func (c *HTTPPaymentClient) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(ctx, req)

	return c.httpClient.Do(req)
}

func (c *HTTPPaymentClient) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if requestID := service.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(requestIDHeader, requestID)
	}
}

func statusError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return &PaymentStatusError{Operation: operation, StatusCode: resp.StatusCode, Body: string(body)}
}
