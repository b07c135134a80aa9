package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "foodgram", claims.Issuer)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := New("one", time.Hour).GenerateToken(1, "user")
	require.NoError(t, err)

	_, err = New("two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	token, err := New("secret", -time.Minute).GenerateToken(1, "user")
	require.NoError(t, err)

	_, err = New("secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := New("secret", time.Hour).ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
