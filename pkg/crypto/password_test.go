package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CheckPassword("secret123", hash))
	require.False(t, CheckPassword("wrong", hash))
	require.False(t, CheckPassword("secret123", "not-a-hash"))
}

func TestHashPasswordError(t *testing.T) {
	orig := bcryptGenerateFromPassword
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	defer func() { bcryptGenerateFromPassword = orig }()

	_, err := HashPassword("x")
	require.Error(t, err)
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := GenerateSessionID()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestGenerateSessionIDError(t *testing.T) {
	orig := randomRead
	randomRead = func([]byte) (int, error) {
		return 0, errors.New("entropy exhausted")
	}
	defer func() { randomRead = orig }()

	_, err := GenerateSessionID()
	require.Error(t, err)
}
