// Package auth mints and validates the signed bearer tokens that protected
// routes trust. Tokens are self-contained HS256 JWTs; verification needs only
// the shared secret.
package auth

import (
	"strings"
	"time"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the authenticated user's
// identity. Username doubles as the subject.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// GenerateToken mints an HS256-signed bearer token for the given user,
// valid from now for validityDuration.
func GenerateToken(userID, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(secretKey)
}

// ParseToken checks the signature against secretKey and the expiry against
// the current time, returning the embedded claims. Every failure (bad
// signature, malformed structure, expired) collapses to
// common.ErrInvalidToken; callers are not told which check failed.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// The value must be exactly the scheme "Bearer", a single space, and a
// non-empty token; any other shape (missing header, wrong scheme, extra
// segments, empty token) is rejected without touching the token.
func ExtractBearerToken(header string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", common.ErrInvalidToken
	}
	return parts[1], nil
}
