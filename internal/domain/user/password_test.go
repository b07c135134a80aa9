package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	hashCost = bcrypt.MinCost
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword("s3cret-pass", hash))
	assert.ErrorIs(t, CheckPassword("wrong-pass", hash), ErrInvalidPassword)
	assert.ErrorIs(t, CheckPassword("s3cret-pass", "x"), ErrInvalidPassword)
}
