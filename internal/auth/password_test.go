package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Passw0rd!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd!", hash)

	require.True(t, VerifyPassword(hash, "Passw0rd!"))
	require.False(t, VerifyPassword(hash, "passw0rd!"))
	require.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPassword_NotAHash(t *testing.T) {
	t.Parallel()

	// A stored value that is not a bcrypt hash must simply fail to verify.
	require.False(t, VerifyPassword("plaintext-left-over", "plaintext-left-over"))
}
