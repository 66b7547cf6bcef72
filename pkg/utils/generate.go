package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// ==================== SESSION TOKEN ====================

// GenerateSessionToken returns the opaque token handed to the browser.
func GenerateSessionToken() string {
	return uuid.New().String()
}

// HashToken is the lookup key stored for a session token. Only the hash is
// persisted so a leaked sessions table cannot be replayed.
func HashToken(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MaskToken keeps enough of a token to correlate log lines.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:8] + "****"
}
