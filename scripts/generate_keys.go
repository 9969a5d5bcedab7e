//go:build ignore

// This script generates secure random keys and, given a customer id, a
// customer access token for local testing.
//
//	go run scripts/generate_keys.go
//	JWT_SECRET_KEY=... go run scripts/generate_keys.go -customer customer-7 -ttl 2h
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/checkout-service/internal/service"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	customerID := flag.String("customer", "", "issue a token for this customer id using JWT_SECRET_KEY")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *customerID != "" {
		secret := os.Getenv("JWT_SECRET_KEY")
		if secret == "" {
			fail("JWT_SECRET_KEY must be set to issue a customer token")
		}
		tokens := service.NewTokenService(service.TokenConfig{SecretKey: secret, TTL: *ttl})
		token, expiresAt, err := tokens.IssueToken(*customerID)
		if err != nil {
			fail("Error issuing token: %v", err)
		}
		fmt.Printf("Authorization: Bearer %s\n", token)
		fmt.Printf("# expires at %s\n", expiresAt.Format(time.RFC3339))
		return
	}

	fmt.Println("=== Checkout Service Key Generator ===")
	fmt.Println()

	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("Error generating JWT secret: %v", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("Error generating API key: %v", err)
	}

	paymentKey, err := generateSecureKey(24)
	if err != nil {
		fail("Error generating payment API key: %v", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Customer tokens")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (optional, for API key authentication)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("# Payment provider sandbox key")
	fmt.Printf("PAYMENT_API_KEY=%s\n", paymentKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
