package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseSession(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	token, err := IssueSession("user-123", "a@b.com")
	require.NoError(t, err)

	claims, err := ParseSession(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseSessionExpired(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: "user-123",
		Email:  "a@b.com",
	})

	tokenStr, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseSession(tokenStr)
	assert.Error(t, err)
}

func TestParseSessionWrongSecret(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	token, err := IssueSession("user-123", "a@b.com")
	require.NoError(t, err)

	viper.Set("jwt.secret", "other-secret")

	_, err = ParseSession(token)
	assert.Error(t, err)
}

func TestParseSessionRejectsUnexpectedAlg(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-123",
	})

	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseSession(tokenStr)
	assert.Error(t, err)
}

func TestParseSessionMalformed(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	_, err := ParseSession("not.a.jwt")
	assert.Error(t, err)
}
