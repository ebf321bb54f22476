package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/adscorr/internal/api"
	"github.com/RMahshie/adscorr/internal/config"
	"github.com/RMahshie/adscorr/internal/frequency"
	"github.com/RMahshie/adscorr/internal/processing"
	"github.com/RMahshie/adscorr/internal/repository"
	"github.com/RMahshie/adscorr/internal/repository/postgres"
	"github.com/RMahshie/adscorr/internal/storage"
	"github.com/RMahshie/adscorr/pkg/models"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.Log.Level)

	ctx := context.Background()

	// Persistence is optional
	var calcRepo repository.CalculationRepository
	if cfg.Database.URL != "" {
		db, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open database")
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		pgRepo := postgres.NewPostgresCalculationRepository(db)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare database schema")
		}
		calcRepo = pgRepo
		log.Info().Msg("Calculation persistence enabled")
	}

	// Object storage is optional
	var s3Service storage.S3Service
	if cfg.AWS.S3Bucket != "" {
		s3Service, err = storage.NewS3Service(ctx, storage.S3Config{
			Bucket:    cfg.AWS.S3Bucket,
			Endpoint:  cfg.AWS.S3Endpoint,
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKeyID,
			SecretKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
		log.Info().Str("bucket", cfg.AWS.S3Bucket).Msg("Object storage enabled")
	}

	correctionSvc := processing.NewCorrectionService(frequency.NewObjectLoader(s3Service), calcRepo)

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Create Huma API
	humaConfig := huma.DefaultConfig("Adsorption Energy Correction API", "1.0.0")
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = "1.0.0"
		resp.Body.Time = time.Now()
		return resp, nil
	})

	api.RegisterRoutes(humaAPI, calcRepo, s3Service, correctionSvc)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting correction API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", middleware.GetReqID(r.Context())).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
