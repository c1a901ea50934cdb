package crypto

import (
	"encoding/hex"
	"testing"
)

func TestNewSigningSecret(t *testing.T) {
	secret, err := NewSigningSecret()
	if err != nil {
		t.Fatalf("NewSigningSecret() unexpected error: %v", err)
	}

	raw, err := hex.DecodeString(secret)
	if err != nil {
		t.Fatalf("NewSigningSecret() returned non-hex output: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("NewSigningSecret() decoded length = %d, want 32", len(raw))
	}
}

func TestNewSigningSecretUnique(t *testing.T) {
	a, err := NewSigningSecret()
	if err != nil {
		t.Fatalf("NewSigningSecret() unexpected error: %v", err)
	}
	b, err := NewSigningSecret()
	if err != nil {
		t.Fatalf("NewSigningSecret() unexpected error: %v", err)
	}

	if a == b {
		t.Error("NewSigningSecret() produced identical secrets")
	}
}
