package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "checkout-service"

var (
	// ErrInvalidToken is returned when a token is malformed, expired or signed with another key.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenSecretMissing is returned when tokens are requested without a signing key.
	ErrTokenSecretMissing = errors.New("token secret key is not configured")
)

// CustomerClaims are the claims carried by a customer access token.
// The subject is the customer id the bearer may act for.
type CustomerClaims struct {
	CustomerID string `json:"customer_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates customer access tokens.
type TokenService interface {
	// IssueToken signs a token that lets its bearer act for customerID.
	IssueToken(customerID string) (string, time.Time, error)
	// ValidateToken parses tokenString and returns its claims.
	ValidateToken(tokenString string) (*CustomerClaims, error)
}

// TokenServiceImpl implements TokenService with HS256 tokens.
type TokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	TTL       time.Duration
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) TokenService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// IssueToken implements TokenService.
func (s *TokenServiceImpl) IssueToken(customerID string) (string, time.Time, error) {
	if len(s.secretKey) == 0 {
		return "", time.Time{}, ErrTokenSecretMissing
	}
	if customerID == "" {
		return "", time.Time{}, errors.New("customer id is empty, cannot create token")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &CustomerClaims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   customerID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken implements TokenService.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*CustomerClaims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrTokenSecretMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomerClaims)
	if !ok || !token.Valid || claims.CustomerID == "" || claims.Subject != claims.CustomerID {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
