package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/agoracomunicaciones/agorabackend/controllers"
	"github.com/agoracomunicaciones/agorabackend/database"
	"github.com/agoracomunicaciones/agorabackend/logging"
	"github.com/agoracomunicaciones/agorabackend/storage"
	"github.com/agoracomunicaciones/agorabackend/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	loadErr := godotenv.Load()
	logging.Setup()
	if loadErr != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	client, err := database.Connect()
	if err != nil {
		logging.Fatal("mongodb connect failed", "error", err)
	}
	store := database.NewMongoStore(client, utils.EnvDefault("DB_NAME", "agora_comunicaciones"))

	files, err := storage.New(context.Background())
	if err != nil {
		logging.Fatal("file storage init failed", "error", err)
	}

	r := gin.New()
	r.Use(corsMiddleware())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/", controllers.Root())
	r.GET("/api/health", controllers.HealthCheck(store))
	r.GET("/api/services", controllers.GetServices())
	r.GET("/api/team", controllers.GetTeam())
	r.POST("/api/contact", controllers.SubmitContact(store))
	r.POST("/api/quote", controllers.SubmitQuote(store, files))
	r.GET("/api/contact-requests", controllers.GetContactRequests(store))
	r.GET("/api/quote-requests", controllers.GetQuoteRequests(store))

	if err := r.Run(); err != nil {
		logging.Fatal("server stopped", "error", err)
	}
}

// corsMiddleware builds the CORS policy from ALLOWED_ORIGINS. An empty
// variable or a "*" entry allows every origin, which is what the public
// site relies on.
func corsMiddleware() gin.HandlerFunc {
	origins := os.Getenv("ALLOWED_ORIGINS")

	allowAll := origins == ""
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAll = true
		} else if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	slog.Info("cors configured", "allow_all", allowAll, "origins", origins)

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowAll || allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
