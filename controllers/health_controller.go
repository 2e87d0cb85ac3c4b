package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root handles GET /.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Ágora Comunicaciones API"})
	}
}

// HealthCheck handles GET /api/health. A failed ping is reported in the
// body, not as an HTTP error, and has no effect on the other endpoints.
func HealthCheck(store RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			c.JSON(http.StatusOK, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
	}
}
