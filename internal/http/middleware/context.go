package middleware

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/auth"
	"taskboard/internal/rpc"
)

const contextKey = "request_context"

// RequestContext derives the per-request rpc context from the Authorization
// header. It never aborts: an invalid or expired token leaves the request
// anonymous and each procedure decides whether that is acceptable.
func RequestContext(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, rpc.BuildContext(c.Request.Header, verifier))
		c.Next()
	}
}

// GetContext returns the rpc context set by RequestContext, or an anonymous
// one when the middleware did not run.
func GetContext(c *gin.Context) rpc.Context {
	v, ok := c.Get(contextKey)
	if !ok {
		return rpc.Anonymous()
	}
	rc, ok := v.(rpc.Context)
	if !ok {
		return rpc.Anonymous()
	}
	return rc
}
