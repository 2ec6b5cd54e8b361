package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyTenantID is returned when a token carries no subject.
var ErrEmptyTenantID = errors.New("token has empty tenant id")

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The "sub" claim holds the tenant identifier.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// TenantID is a cached copy of the "sub" claim.
	TenantID string `json:"-"`
}

// GetTenantID returns the tenant identifier: the cached TenantID when set,
// the "sub" claim of the parsed token otherwise.
func (t *Token) GetTenantID() (string, error) {
	if t.TenantID != "" {
		return t.TenantID, nil
	}

	sub, err := t.RegisteredClaims.GetSubject()
	if err == nil && sub == "" && t.Token != nil && t.Token.Claims != nil {
		sub, err = t.Token.Claims.GetSubject()
	}
	if err != nil {
		return "", fmt.Errorf("error extracting tenant id from token: %w", err)
	}
	if sub == "" {
		return "", ErrEmptyTenantID
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
