package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/logger"
	"taskboard/internal/rpc"
	"taskboard/internal/status"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Router *rpc.Router
	Status *status.Service

	// DefaultUserID serves the single-tenant dashboard pages when a request
	// carries no token. Zero disables the fallback.
	DefaultUserID int64
}

func NewHandler(router *rpc.Router, statusSvc *status.Service, defaultUserID int64) *Handler {
	return &Handler{Router: router, Status: statusSvc, DefaultUserID: defaultUserID}
}

// writeError maps procedure errors onto HTTP responses. Typed errors keep
// their kind and field details; anything else is logged server-side and
// surfaced as a generic service-unavailable signal.
func writeError(c *gin.Context, err error) {
	var rpcErr *rpc.Error
	if errors.As(err, &rpcErr) {
		c.JSON(rpcErr.HTTPStatus(), gin.H{
			"error":  rpcErr.Message,
			"kind":   rpcErr.Kind,
			"fields": rpcErr.Fields,
		})
		return
	}

	logger.Error("unexpected error handling request",
		"path", c.FullPath(), "request_id", c.GetString("request_id"), "error", err)
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
}
