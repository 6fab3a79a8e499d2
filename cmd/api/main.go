//	@title			Image Bed API
//	@version		1.0
//	@description	Stateless gateway that stores images in S3-compatible object storage and serves them by extension-agnostic public identifiers.
//
//	@host		localhost:8080
//	@BasePath	/api
//
//	@securityDefinitions.apikey	UploadToken
//	@in							header
//	@name						X-Upload-Token
//	@description				Bearer token issued by /api/login.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/imagebed/service/internal/auth"
	"github.com/imagebed/service/internal/config"
	"github.com/imagebed/service/internal/files"
	appMiddleware "github.com/imagebed/service/internal/middleware"
	"github.com/imagebed/service/internal/response"
	"github.com/imagebed/service/internal/storage"

	_ "github.com/imagebed/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: service → handler
	authSvc := auth.NewService(cfg)
	authHandler := auth.NewHandler(authSvc)

	filesSvc := files.NewService(store, cfg.MaxFileBytes())
	filesHandler := files.NewHandler(filesSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(appMiddleware.Metrics())
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Upload-Token"},
		MaxAge:         86400,
	}))

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			response.JSON(w, http.StatusOK, map[string]string{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// Public endpoints
		r.Post("/login", authHandler.Login)
		r.Post("/verify", authHandler.Verify)
		r.Get("/file/{fileID}", filesHandler.Get)
		r.Get("/list", filesHandler.List)

		// Token-protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.RequireToken(authSvc))
			r.Post("/upload", filesHandler.Upload)
			r.Delete("/delete/{fileID}", filesHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "no such API endpoint")
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s, bucket=%s)", cfg.Port, cfg.AppEnv, cfg.StorageBucket)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
