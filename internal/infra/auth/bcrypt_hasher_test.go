package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password verifies, anything else does not.
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("some password")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("some password")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_ValidHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("some password")
	assert.NoError(t, err)
	assert.True(t, hasher.ValidHash(hash))

	// Legacy PHP-style prefix is still a valid bcrypt hash.
	assert.True(t, hasher.ValidHash("$2y$"+hash[4:]))

	invalid := []string{
		"",
		"plaintext",
		"5f4dcc3b5aa765d61d8327deb882cf99", // md5, not bcrypt
		"$1$legacy$hash",
		"$2a$truncated",
	}
	for _, h := range invalid {
		assert.False(t, hasher.ValidHash(h), "expected %q to be rejected", h)
	}
}

func TestBcryptHasher_CheckDummyTakesComparableTime(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("real password")
	assert.NoError(t, err)

	start := time.Now()
	hasher.Check("guess", hash)
	realCost := time.Since(start)

	start = time.Now()
	hasher.CheckDummy("guess")
	dummyCost := time.Since(start)

	// Both paths must pay for a bcrypt comparison. Exact timings vary, so
	// just require the dummy path to be within an order of magnitude.
	assert.Greater(t, dummyCost*10, realCost)
}

func TestRandomTokenSource_Generate(t *testing.T) {
	source := NewRandomTokenSource()

	token, err := source.Generate()
	assert.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", token)

	// Two tokens from the same source must differ.
	other, err := source.Generate()
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}
