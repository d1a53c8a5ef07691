// Package auth mints and reads the opaque session tokens handed out by the
// mock backend. Tokens are HS256 JWTs carrying the account id and a fresh
// random id, so two logins of the same account never share a token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/loginflow/internal/common"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: the registered claims plus the account id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// TokenIssuer signs and verifies session tokens with a shared secret.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewTokenIssuer returns an issuer using secret. An empty secret is replaced
// by a random one, which makes tokens valid for this process only.
func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generate token secret: %w", err)
		}
		secret = s
	}
	return &TokenIssuer{secret: []byte(secret), now: time.Now}, nil
}

// GenerateToken mints a new token for userID. Tokens carry no expiry.
func (ti *TokenIssuer) GenerateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Issuer:   common.AppName,
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(ti.now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(ti.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns its claims.
func (ti *TokenIssuer) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUserIDFromToken is a shortcut for ParseToken(...).UserID.
func (ti *TokenIssuer) GetUserIDFromToken(tokenString string) (string, error) {
	claims, err := ti.ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
