package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Admiral-Simo/globalvaccinator/internal/error/code"
	"github.com/Admiral-Simo/globalvaccinator/internal/error/response"
	"github.com/Admiral-Simo/globalvaccinator/internal/services"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	Service services.InterfacePatientService
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(svc services.InterfacePatientService) *HealthHandler {
	return &HealthHandler{Service: svc}
}

// Ping health check endpoint
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Health reports whether storage is reachable.
// @Summary      Health
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  response.ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.Service.Ping(c.Request.Context()); err != nil {
		response.Fail(c, code.ErrStorageUnavailable, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"storage": "up",
	})
}
