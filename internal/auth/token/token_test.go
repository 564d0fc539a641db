package token

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	userID := snowflake.ID(424242)

	raw, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := issuer.Validate(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != userID {
		t.Fatalf("expected user %d, got %d", userID, got)
	}
}

func TestValidateExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	raw, err := issuer.Issue(snowflake.ID(7))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = issuer.Validate(raw)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestValidateTampered(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	raw, err := issuer.Issue(snowflake.ID(7))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewIssuer("other-secret", time.Hour)
	if _, err := other.Validate(raw); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for wrong key, got %v", err)
	}

	if _, err := issuer.Validate("not-a-token"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for garbage, got %v", err)
	}
}
