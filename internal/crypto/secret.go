package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewSigningSecret returns a random hex-encoded secret suitable for signing
// session tokens. Used for development runs where JWT_SECRET is not set;
// tokens signed with it do not survive a restart.
func NewSigningSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating signing secret: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
