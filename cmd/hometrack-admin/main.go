package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/config"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting hometrack admin gateway",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"session_store", cfg.Session.Store,
		"dev", cfg.IsDev)

	var redisClient redis.UniversalClient
	if cfg.Session.Store == config.SessionStoreRedis {
		redisClient, err = bootstrap.ConnectRedis(bootstrap.RedisOptions{
			Config: cfg.Redis,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:      &cfg,
		RedisClient: redisClient,
		Logger:      logger,
	})

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Addr:     cfg.HTTP.Addr,
		Services: services,
		Logger:   logger,
	})

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	return bootstrap.ShutdownHTTPServer(context.Background(), server, logger)
}
