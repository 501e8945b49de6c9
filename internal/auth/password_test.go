package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	require.NoError(t, ComparePassword(hash, "hunter2"))
	require.Error(t, ComparePassword(hash, "hunter3"))
}

func TestPasswordHashClampsBelowMinimumCost(t *testing.T) {
	// An unset BCRYPT_COST parses to zero; hashing must still produce a
	// verifiable hash rather than an error or a degenerate cost.
	hash, err := HashPassword("hunter2", 0)
	require.NoError(t, err)
	require.NoError(t, ComparePassword(hash, "hunter2"))
}
