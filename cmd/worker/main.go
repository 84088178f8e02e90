package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/onebluedot/site/internal/queue/tasks"
	"github.com/onebluedot/site/internal/repository"
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

	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required for the worker")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}
	_ = rdb.Close()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		},
		asynq.Config{
			Concurrency: cfg.AsynqConcurrency,
		},
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize image storage", zap.Error(err))
	}

	handler := tasks.NewPurgeTaskHandler(repository.NewProjectRepository(db), store)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeImagesPurge, handler.HandlePurge)

	errCh := make(chan error, 1)
	go func() {
		log.Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("worker stopped with error", zap.Error(err))
	}

	srv.Shutdown()
}
