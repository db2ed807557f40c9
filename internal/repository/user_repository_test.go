package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	// The exact text comes from the MySQL driver; only the 1062 code matters.
	dup := errors.New("Error 1062 (23000): Duplicate entry 'alice@example.com' for key 'users.email'")
	require.True(t, isDuplicateKey(dup))

	require.False(t, isDuplicateKey(errors.New("Error 1045 (28000): Access denied")))
	require.False(t, isDuplicateKey(errors.New("connection refused")))
	require.False(t, isDuplicateKey(nil))
}
