package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost

	first, err := HashPassword("sjoann")
	require.NoError(t, err)
	second, err := HashPassword("sjoann")
	require.NoError(t, err)

	assert.NotEqual(t, "sjoann", first)
	assert.NotEqual(t, first, second, "hashes are salted")
	assert.True(t, ComparePassword("sjoann", first))
	assert.True(t, ComparePassword("sjoann", second))
	assert.False(t, ComparePassword("wrong", first))
}

func TestComparePasswordMalformedHash(t *testing.T) {
	assert.False(t, ComparePassword("sjoann", "not-a-bcrypt-hash"))
	assert.False(t, ComparePassword("sjoann", ""))
}
