package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWTRoundTrip(t *testing.T) {
	key := []byte("secret")

	tokenStr, genErr := GenerateUserJWT(42, time.Hour, key)
	require.NoError(t, genErr)
	require.NotEmpty(t, tokenStr)

	token, valErr := ValidateUserJWT(tokenStr, key)
	require.NoError(t, valErr)

	claims, ok := token.Claims.(*UserClaims)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.ID)
}

func TestUserJWTExpired(t *testing.T) {
	key := []byte("secret")

	tokenStr, genErr := GenerateUserJWT(42, -time.Minute, key)
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenStr, key)
	require.ErrorIs(t, valErr, ErrTokenExpired)
}

func TestUserJWTWrongKey(t *testing.T) {
	tokenStr, genErr := GenerateUserJWT(42, time.Hour, []byte("secret"))
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenStr, []byte("other"))
	require.Error(t, valErr)
}
