package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/agoracomunicaciones/agorabackend/dto"
	"github.com/agoracomunicaciones/agorabackend/models"
	"github.com/agoracomunicaciones/agorabackend/storage"
	"github.com/agoracomunicaciones/agorabackend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitQuote handles POST /api/quote.
// multipart/form-data:
//   - name, email, project_description: required
//   - phone, company, budget_range, timeline: optional
//   - services: JSON-encoded string list (may be empty)
//   - files: 0..n attachments
func SubmitQuote(store RequestStore, files storage.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.SubmitQuoteDTO
		if err := c.ShouldBind(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		body.Name = strings.TrimSpace(body.Name)
		body.ProjectDescription = strings.TrimSpace(body.ProjectDescription)
		if body.Name == "" || body.ProjectDescription == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and project_description are required"})
			return
		}

		services, err := decodeServices(body.Services)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid services payload", "details": err.Error()})
			return
		}

		// All validation passed; attachments are written from here on.
		var attachments []models.FileRef
		form, _ := c.MultipartForm()
		if form != nil {
			for _, fh := range form.File["files"] {
				if fh.Filename == "" {
					continue
				}

				fileID := uuid.New().String()
				storedName := fileID + "." + utils.FileExtension(fh.Filename)

				src, err := fh.Open()
				if err != nil {
					failQuoteUpload(c, &utils.FileWriteError{Path: storedName, Err: err}, attachments)
					return
				}
				path, size, err := files.Save(ctx, storedName, src)
				_ = src.Close()
				if err != nil {
					failQuoteUpload(c, err, attachments)
					return
				}

				attachments = append(attachments, models.FileRef{
					ID:           fileID,
					OriginalName: fh.Filename,
					Path:         path,
					Size:         size,
				})
			}
		}

		req := models.QuoteRequest{
			ID:                 uuid.New().String(),
			Name:               body.Name,
			Email:              strings.TrimSpace(body.Email),
			Phone:              strings.TrimSpace(body.Phone),
			Company:            strings.TrimSpace(body.Company),
			Services:           services,
			ProjectDescription: body.ProjectDescription,
			BudgetRange:        strings.TrimSpace(body.BudgetRange),
			Timeline:           strings.TrimSpace(body.Timeline),
			Files:              append([]models.FileRef{}, attachments...),
			Status:             models.StatusNew,
			CreatedAt:          time.Now().UTC(),
		}

		if err := store.InsertQuote(ctx, req); err != nil {
			// The attachments already written stay where they are; log their
			// paths so they can be reconciled by hand.
			slog.Error("quote insert failed", "error", err, "orphaned_files", storedPaths(attachments))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al enviar la solicitud de cotización"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Solicitud de cotización enviada exitosamente",
			"id":             req.ID,
			"status":         "success",
			"files_uploaded": len(attachments),
		})
	}
}

// decodeServices parses the JSON-encoded service id list. An empty payload
// means no services were selected.
func decodeServices(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var services []string
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, &utils.ValidationError{Reason: err.Error()}
	}
	if services == nil {
		services = []string{}
	}
	return services, nil
}

func failQuoteUpload(c *gin.Context, err error, written []models.FileRef) {
	slog.Error("quote attachment write failed", "error", err, "written_files", storedPaths(written))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al enviar la solicitud de cotización"})
}

func storedPaths(refs []models.FileRef) []string {
	paths := make([]string, 0, len(refs))
	for _, r := range refs {
		paths = append(paths, r.Path)
	}
	return paths
}
