package utils_test

import (
	"testing"

	"farmlink_back_end/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := utils.HashPassword("motdepasse123")
	require.NoError(t, err)
	assert.True(t, utils.IsArgon2Hash(hash))

	ok, err := utils.VerifyPassword("motdepasse123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("motdepasse123")
	require.NoError(t, err)

	ok, err := utils.VerifyPassword("autremot", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := utils.HashPassword("motdepasse123")
	require.NoError(t, err)
	h2, err := utils.HashPassword("motdepasse123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_BcryptFallback(t *testing.T) {
	// Anciens comptes hashés en bcrypt avant la migration Argon2
	legacy, err := bcrypt.GenerateFromPassword([]byte("ancien"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, utils.IsBcryptHash(string(legacy)))

	ok, err := utils.VerifyPassword("ancien", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = utils.VerifyPassword("faux", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := utils.VerifyPassword("x", "pas-un-hash")
	assert.Error(t, err)
}
