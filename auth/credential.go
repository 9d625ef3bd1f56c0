// Package auth holds the bearer credential issued by the backend and
// the identity of the actor it belongs to. The client never verifies
// token signatures (that is the server's job); it only inspects claims
// to detect expiry locally and avoid doomed requests.
package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mealbridge/domain"
	"mealbridge/errors"
)

// Claims mirrors what the backend packs into its access tokens.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Credential is the single owner of the auth state: the current actor
// and its bearer token. Mutation happens only through SetSession and
// Clear, so every reader observes a consistent pair.
type Credential struct {
	mu    sync.RWMutex
	user  *domain.User
	token string
}

func NewCredential() *Credential {
	return &Credential{}
}

// SetSession installs the identity returned by login or register.
func (c *Credential) SetSession(user domain.User, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = &user
	c.token = token
}

// Clear drops the session on logout.
func (c *Credential) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.token = ""
}

// User returns the authenticated actor, or false when logged out.
func (c *Credential) User() (domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return domain.User{}, false
	}
	return *c.user, true
}

// Token returns the raw bearer token for the Authorization header.
func (c *Credential) Token() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return "", errors.ErrNotAuthenticated
	}
	return c.token, nil
}

// InspectClaims decodes the token payload without verifying the
// signature. Useful to surface expiry before the server rejects us.
func InspectClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("malformed bearer token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the held token's exp claim is in the past.
// A token without claims is treated as still valid; the backend has
// the final word either way.
func (c *Credential) Expired(now time.Time) bool {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token == "" {
		return false
	}
	claims, err := InspectClaims(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
