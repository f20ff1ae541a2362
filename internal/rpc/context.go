package rpc

import (
	"net/http"
	"strings"

	"taskboard/internal/auth"
)

// Context is the per-request state every procedure receives. A nil userID
// means the request is anonymous.
type Context struct {
	userID *int64
}

// WithUser returns a context bound to the given user ID. Used by callers
// that already resolved an identity (the status aggregator, tests).
func WithUser(userID int64) Context {
	return Context{userID: &userID}
}

// Anonymous returns a context with no identity.
func Anonymous() Context {
	return Context{}
}

// User returns the authenticated user ID, or false for anonymous contexts.
func (c Context) User() (int64, bool) {
	if c.userID == nil {
		return 0, false
	}
	return *c.userID, true
}

// BuildContext derives a request context from the Authorization header.
// A missing, malformed, expired or otherwise invalid bearer token downgrades
// the request to anonymous; verification failures are never surfaced as
// errors here. Authorization is enforced later, per procedure.
func BuildContext(h http.Header, verifier auth.TokenVerifier) Context {
	authHeader := h.Get("Authorization")
	if authHeader == "" {
		return Anonymous()
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := verifier.Verify(token)
	if err != nil {
		return Anonymous()
	}
	return WithUser(userID)
}
