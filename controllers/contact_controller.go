package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/agoracomunicaciones/agorabackend/dto"
	"github.com/agoracomunicaciones/agorabackend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitContact handles POST /api/contact.
func SubmitContact(store RequestStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.SubmitContactDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Message = strings.TrimSpace(body.Message)
		if body.Name == "" || body.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and message are required"})
			return
		}

		req := models.ContactRequest{
			ID:        uuid.New().String(),
			Name:      body.Name,
			Email:     strings.TrimSpace(body.Email),
			Phone:     strings.TrimSpace(body.Phone),
			Company:   strings.TrimSpace(body.Company),
			Message:   body.Message,
			Status:    models.StatusNew,
			CreatedAt: time.Now().UTC(),
		}

		if err := store.InsertContact(ctx, req); err != nil {
			slog.Error("contact insert failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al enviar el mensaje"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Mensaje enviado exitosamente",
			"id":      req.ID,
			"status":  "success",
		})
	}
}
