// Package security contains everything related to the security of user data
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// SessionTTL is how long an issued session token stays valid. Tokens
// are stateless, there is no server-side revocation list.
const SessionTTL = time.Hour * 24 * 7

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the payload carried by every session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// IssueSession mints a signed HS256 token for the given user identity
func IssueSession(userID, email string) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
		UserID: userID,
		Email:  email,
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// ParseSession validates a token string and returns its claims. Expiry
// is checked by the jwt library as part of parsing.
func ParseSession(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
