package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestServiceTokenSource_MintsValidToken(t *testing.T) {
	src, err := NewServiceTokenSource(ServiceTokenConfig{
		Secret:   "test-secret",
		Issuer:   "reqkit-test",
		Subject:  "svc-a",
		Audience: "svc-b",
		TTL:      time.Minute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok, err := src.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("expected a valid token")
	}
	if claims.Issuer != "reqkit-test" || claims.Subject != "svc-a" {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "svc-b" {
		t.Errorf("audience mismatch: %v", claims.Audience)
	}
}

func TestServiceTokenSource_CachesUntilNearExpiry(t *testing.T) {
	src, err := NewServiceTokenSource(ServiceTokenConfig{Secret: "s", TTL: time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := src.Token(context.Background())
	second, _ := src.Token(context.Background())
	if first != second {
		t.Error("token should be cached while far from expiry")
	}

	// Move the clock to just before expiry; the source must mint anew.
	src.now = func() time.Time { return time.Now().Add(time.Hour) }
	third, err := src.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third == first {
		t.Error("token should be reminted near expiry")
	}
}

func TestServiceTokenSource_RequiresSecret(t *testing.T) {
	if _, err := NewServiceTokenSource(ServiceTokenConfig{}); err == nil {
		t.Error("expected error when secret is missing")
	}
}
