package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/onebluedot/site/internal/api"
	"github.com/onebluedot/site/internal/api/handlers"
	"github.com/onebluedot/site/internal/queue/tasks"
	"github.com/onebluedot/site/internal/repository"
	"github.com/onebluedot/site/internal/services"
	"github.com/onebluedot/site/internal/storage"
	"github.com/onebluedot/site/pkg/config"
	"github.com/onebluedot/site/pkg/database"
	"github.com/onebluedot/site/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting ONE BLUE DOT Admin Server",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("prefix", cfg.APIPrefix),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	log.Info("Database connected successfully")

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	var purger services.ImagePurger
	if cfg.RedisAddr != "" {
		qc := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer qc.Close()
		purger = tasks.NewEnqueuer(qc)
	} else {
		log.Warn("REDIS_ADDR not set, images of deleted projects will be kept")
	}

	projectRepo := repository.NewProjectRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)

	setupSvc := services.NewSetupService(db, projectRepo, settingsRepo)
	if cfg.SeedDefaults {
		if _, err := setupSvc.SeedDefaults(ctx); err != nil {
			log.Error("Failed to seed default data", zap.Error(err))
		}
	}

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}

	router := api.NewRouter(api.Dependencies{
		Prefix:          cfg.APIPrefix,
		HMACSecret:      jwtSecret,
		Setup:           setupSvc,
		Files:           storage.FilesHandler(store, cfg.SignedURLTTL),
		HealthHandler:   handlers.NewHealthHandler(setupSvc, cfg.StorageDriver),
		AuthHandler:     handlers.NewAuthHandler(services.NewAuthService(userRepo, jwtSecret)),
		ProjectsHandler: handlers.NewProjectsHandler(services.NewProjectService(projectRepo, purger)),
		SettingsHandler: handlers.NewSettingsHandler(services.NewSettingsService(settingsRepo)),
		UploadHandler:   handlers.NewUploadHandler(services.NewImageService(store, cfg.PublicBaseURL, cfg.UploadMaxBytes), cfg.UploadMaxBytes),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
