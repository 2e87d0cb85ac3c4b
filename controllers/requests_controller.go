package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetContactRequests handles GET /api/contact-requests. Records come back
// newest first with the store's internal id already stripped.
func GetContactRequests(store RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.ListContacts(c.Request.Context())
		if err != nil {
			slog.Error("listing contact requests failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener solicitudes de contacto"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetQuoteRequests handles GET /api/quote-requests.
func GetQuoteRequests(store RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.ListQuotes(c.Request.Context())
		if err != nil {
			slog.Error("listing quote requests failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener solicitudes de cotización"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
