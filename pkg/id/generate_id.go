package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewShortID returns a prefixed short identifier such as "APP_1a2b3c4d".
// The suffix is the first 8 hex chars of a random UUID.
func NewShortID(prefix string) string {
	u := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + u[:8]
}
