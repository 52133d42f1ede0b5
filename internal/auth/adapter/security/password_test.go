package security_test

import (
	"testing"

	"jobboard/internal/auth/adapter/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := security.NewBcryptHasher()

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery staple", digest)
	assert.True(t, hasher.Verify("correct horse battery staple", digest))
	assert.False(t, hasher.Verify("wrong password", digest))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := security.NewBcryptHasher()

	first, err := hasher.Hash("p")
	require.NoError(t, err)
	second, err := hasher.Hash("p")
	require.NoError(t, err)

	// Same plaintext, different salts, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("p", first))
	assert.True(t, hasher.Verify("p", second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	hasher := security.NewBcryptHasher()

	testCases := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"plaintext digest", "not-a-bcrypt-digest"},
		{"truncated digest", "$2a$10$short"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("anything", tc.digest))
		})
	}
}
