package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rentadmin/internal/config"
)

// CookieName is the cookie that carries the session marker.
const CookieName = "auth_token"

// getSessionKey returns the session signing key from configuration
func getSessionKey() []byte {
	return []byte(config.Get().SessionSecret)
}

// SessionClaims represents the claims in the session token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// IssueSessionToken generates a signed session token for the operator.
// The token is the only session record; there is no server-side table.
func IssueSessionToken(username string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "rentadmin-api",
			Subject:   username,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSessionKey())
}

// ValidateSessionToken parses and validates a session token, returning
// the operator username it was issued to.
func ValidateSessionToken(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSessionKey(), nil
	})

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	return claims.Subject, nil
}

// SetSessionCookie attaches the session token to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(config.Get().SessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
