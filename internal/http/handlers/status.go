package handlers

import (
	"net/http"

	"taskboard/internal/http/middleware"
	"taskboard/internal/rpc"

	"github.com/gin-gonic/gin"
)

// resolveUser picks the user for the dashboard endpoints: the authenticated
// identity when a valid token was sent, otherwise the configured
// single-tenant fallback. With neither, the request is rejected.
func (h *Handler) resolveUser(c *gin.Context) (int64, bool) {
	if userID, ok := middleware.GetContext(c).User(); ok {
		return userID, true
	}
	if h.DefaultUserID > 0 {
		return h.DefaultUserID, true
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	return 0, false
}

// TasksStatus serves the dashboard summary: all tasks partitioned into
// completed and pending, with counts.
func (h *Handler) TasksStatus(c *gin.Context) {
	userID, ok := h.resolveUser(c)
	if !ok {
		return
	}

	sum, err := h.Status.GetStatus(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// NewTask backs the task-creation form on the dashboard.
func (h *Handler) NewTask(c *gin.Context) {
	userID, ok := h.resolveUser(c)
	if !ok {
		return
	}

	var in rpc.CreateTaskInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	t, err := h.Status.CreateTask(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
