package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/share_register/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	raw, err := utils.GenerateAccessToken("user-1", secret, "board-portal", time.Hour)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithIssuer("board-portal"), jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	_, err = utils.GenerateAccessToken("", secret, "", time.Hour)
	assert.Error(t, err)
}
