package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	storage string
}

// NewHealthHandler reports the configured storage backend so a
// misconfigured database is visible from the health check.
func NewHealthHandler(storage string) *HealthHandler {
	return &HealthHandler{storage: storage}
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"message": "teaching-agent backend",
		"storage": h.storage,
	})
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "teaching-agent backend",
		"storage": h.storage,
	})
}
