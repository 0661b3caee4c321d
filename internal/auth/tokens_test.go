package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sensorhub/sensorhub/internal/auth"
	"github.com/sensorhub/sensorhub/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Minute)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	username, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if username != "alice" {
		t.Errorf("subject = %q, want alice", username)
	}
}

func TestTokenExpired(t *testing.T) {
	// A negative TTL puts the expiry in the past at issuance.
	issuer := auth.NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := auth.NewTokenIssuer("secret-one", time.Minute).Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = auth.NewTokenIssuer("secret-two", time.Minute).Verify(token)
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for wrong secret, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Minute)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(garbage); !errors.Is(err, models.ErrUnauthenticated) {
			t.Errorf("Verify(%q): expected ErrUnauthenticated, got %v", garbage, err)
		}
	}
}
