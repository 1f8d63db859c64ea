// Package auth resolves bearer credentials to a stable user identity.
// Identity issuance (registration, login) is owned by an external service;
// this package only verifies what it minted.
package auth

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verifier resolves a bearer token to the caller's user ID.
type Verifier interface {
	Verify(token string) (uint, error)
}

// JWTVerifier verifies HMAC-signed JWTs issued by the identity service.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTVerifier creates a verifier for tokens signed with the given secret.
func NewJWTVerifier(secret, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Verify parses and validates the token and returns the user ID from the
// subject claim.
func (v *JWTVerifier) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	if v.issuer != "" {
		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != v.issuer {
			return 0, ErrInvalidToken
		}
	}
	if v.audience != "" {
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != v.audience {
			return 0, ErrInvalidToken
		}
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}
