package controllers

import (
	"net/http"

	"github.com/agoracomunicaciones/agorabackend/catalog"
	"github.com/gin-gonic/gin"
)

// GetServices handles GET /api/services.
func GetServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Services())
	}
}

// GetTeam handles GET /api/team.
func GetTeam() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Team())
	}
}
