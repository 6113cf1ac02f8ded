// Package jwt implements the token service: signed, time-limited access
// tokens carrying the caller's identity claim.
package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config contains token service configuration.
type Config struct {
	Secret string
	// AccessTokenTTL is how long issued tokens stay valid.
	AccessTokenTTL time.Duration
}

// Claims is the payload embedded in every access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticator issues and verifies HS256 access tokens with a
// process-wide secret.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator creates a token authenticator.
func NewAuthenticator(cfg Config) *Authenticator {
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Authenticator{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given email, expiring TTL after issuance.
func (a *Authenticator) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature and expiration and returns the email
// claim. It satisfies httputil.TokenValidator.
func (a *Authenticator) ValidateToken(_ context.Context, tokenString string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	return claims.Email, nil
}
