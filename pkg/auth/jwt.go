// Package auth holds the session-token and credential-hashing recipes.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webnexa/api/config"
)

// TokenTTL is the absolute lifetime of a session token.
const TokenTTL = 7 * 24 * time.Hour

// Claims holds the typed JWT payload. Only the admin id is carried; the
// account itself is resolved against the store on every protected request.
type Claims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// SignToken creates a signed session token for the given admin id.
func SignToken(adminID string) (string, error) {
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// VerifyToken parses and validates a session token, returning the admin id
// it was issued for. Fails on malformed tokens, wrong signatures, and
// expired claims alike; it never consults the store.
func VerifyToken(t string) (string, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.AdminID, nil
}
