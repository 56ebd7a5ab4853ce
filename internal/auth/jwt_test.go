package auth

import (
	"testing"
	"time"

	"github.com/sadiqhasanrupani/server/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", time.Hour, Claims{
		UserID: 42,
		Role:   model.RolePrincipal,
		Name:   "Asha",
	})
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	claims, err := ParseToken("secret", "issuer", token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected id 42, got %d", claims.UserID)
	}
	if claims.Role != model.RolePrincipal {
		t.Fatalf("expected principal role, got %s", claims.Role)
	}
	if claims.Name != "Asha" {
		t.Fatalf("expected name Asha, got %s", claims.Name)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", -time.Minute, Claims{
		UserID: 1,
		Role:   model.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseToken("secret", "issuer", token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", time.Hour, Claims{UserID: 1, Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseToken("other-secret", "issuer", token); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}
}

func TestWrongIssuerRejected(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer-a", time.Hour, Claims{UserID: 1, Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseToken("secret", "issuer-b", token); err == nil {
		t.Fatalf("expected issuer mismatch to be rejected")
	}
}
