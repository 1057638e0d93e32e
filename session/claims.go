package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession is returned by Claims when no credential is held.
	ErrNoSession = errors.New("session: not logged in")
	// ErrNotJWT is returned by Claims for opaque credentials.
	ErrNotJWT = errors.New("session: credential is not a JWT")
)

// Claims is what the credential says about the admin. Values are read
// without verifying the signature and are for display only.
type Claims struct {
	Subject   string     `json:"sub,omitempty"`
	AdminID   string     `json:"id,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	IssuedAt  *time.Time `json:"iat,omitempty"`
	ExpiresAt *time.Time `json:"exp,omitempty"`
}

// Expired reports whether the credential carries an expiry before now.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

type adminClaims struct {
	AdminID string `json:"id,omitempty"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes token without verifying it.
func ParseClaims(token string) (Claims, error) {
	var ac adminClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &ac); err != nil {
		return Claims{}, ErrNotJWT
	}
	out := Claims{
		Subject: ac.Subject,
		AdminID: ac.AdminID,
		Email:   ac.Email,
		Role:    ac.Role,
	}
	if ac.IssuedAt != nil {
		t := ac.IssuedAt.Time.UTC()
		out.IssuedAt = &t
	}
	if ac.ExpiresAt != nil {
		t := ac.ExpiresAt.Time.UTC()
		out.ExpiresAt = &t
	}
	return out, nil
}

// Claims decodes the current credential.
func (s *Store) Claims() (Claims, error) {
	tok, ok := s.Token()
	if !ok {
		return Claims{}, ErrNoSession
	}
	return ParseClaims(tok)
}
