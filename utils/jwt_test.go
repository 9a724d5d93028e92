package utils

import (
	"testing"
	"time"

	"niryaat/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("acc-1", "sess-1", time.Hour)
	require.NoError(t, err)

	accountID, sessionID, err := ExtractSessionClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", accountID)
	assert.Equal(t, "sess-1", sessionID)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("acc-1", "sess-1", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractSessionClaims(token)
	assert.Error(t, err)
}

func TestTamperedSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken("acc-1", "sess-1", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	_, _, err = ExtractSessionClaims(token)
	assert.Error(t, err)
}
