package model

import (
	"context"
	"time"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	authContextKey contextKey = "authContext"
)

// AuthContext carries the caller's credentials to upstream calls, including across
// async boundaries
type AuthContext struct {
	Subject   string    `json:"subject,omitempty"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// SessionKey returns the workspace key of the caller
func (a *AuthContext) SessionKey() types.SessionKey {
	if a == nil || a.Subject == "" {
		return types.AnonymousSession
	}
	return types.SessionKey(a.Subject)
}

// WithAuthContext adds AuthContext to the context
func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	if authCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext retrieves AuthContext from the context
func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*AuthContext)
	return authCtx, ok && authCtx != nil
}

// Clone creates a copy of the AuthContext
func (a *AuthContext) Clone() *AuthContext {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}
