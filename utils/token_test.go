package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestPromoterTokenRoundTrip(t *testing.T) {
	token, err := GeneratePromoterToken("test-secret", "prom-1", "9876543210", time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ParsePromoterToken("test-secret", token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}

	if claims["promoter_id"] != "prom-1" {
		t.Errorf("Expected promoter_id prom-1, got %v", claims["promoter_id"])
	}
	if claims["phone"] != "9876543210" {
		t.Errorf("Expected phone 9876543210, got %v", claims["phone"])
	}
}

func TestParsePromoterTokenWrongSecret(t *testing.T) {
	token, err := GeneratePromoterToken("test-secret", "prom-1", "9876543210", time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := ParsePromoterToken("another-secret", token); err == nil {
		t.Fatal("Expected an error for a token signed with another secret")
	}
}

func TestParsePromoterTokenExpired(t *testing.T) {
	token, err := GeneratePromoterToken("test-secret", "prom-1", "9876543210", -time.Minute)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := ParsePromoterToken("test-secret", token); err == nil {
		t.Fatal("Expected an error for an expired token")
	}
}

func TestParsePromoterTokenRejectsWrongMethod(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"promoter_id": "prom-1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("Failed to build unsigned token: %v", err)
	}

	if _, err := ParsePromoterToken("test-secret", token); err == nil {
		t.Fatal("Expected an error for a token without an HMAC signature")
	}
}
