package auth

import (
	"crypto/rand"
	"encoding/hex"

	"fitlife/internal/domain/service"
	"fitlife/internal/errors"
)

// tokenByteLength is the entropy of an API token before hex encoding.
// 32 bytes yields a 64 character token string.
const tokenByteLength = 32

// randomTokenSource mints opaque API tokens from the OS entropy pool.
type randomTokenSource struct{}

// NewRandomTokenSource is the constructor for randomTokenSource.
func NewRandomTokenSource() service.TokenSource {
	return &randomTokenSource{}
}

// Generate returns 32 random bytes as a lowercase hex string.
func (s *randomTokenSource) Generate() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read token entropy")
	}
	return hex.EncodeToString(buf), nil
}
