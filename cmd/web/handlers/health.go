package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"congress-tracker/cmd/web/services"
)

// PingFunc checks a backing dependency.
type PingFunc func(ctx context.Context) error

// HealthHandler reports "ok", or 503 when ping fails.
func HealthHandler(ping PingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// StatusHandler godoc
// @Summary      Service status
// @Description  Counts of loaded trades, politicians and committee assignments
// @Tags         ops
// @Produce      json
// @Success      200  {object}  dto.Status
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /status [get]
func StatusHandler(svc *services.StatusService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := svc.Status(c.Request.Context())
		if err != nil {
			abortJSON(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}
