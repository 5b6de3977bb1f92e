package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hongminglow/user-service/internal/config"
	"github.com/hongminglow/user-service/internal/logger"
	"github.com/hongminglow/user-service/internal/server"
	"github.com/hongminglow/user-service/internal/storage"
	"github.com/hongminglow/user-service/internal/storage/cache"
	"github.com/hongminglow/user-service/internal/storage/memory"
	postgres "github.com/hongminglow/user-service/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config: %v", err)
	}
	if err := logger.SetLevelFromString(cfg.LogLevel); err != nil {
		logger.Fatal("%v", err)
	}

	ctx := context.Background()
	userStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("init store: %v", err)
	}
	defer closeStore()

	srv := server.New(cfg, userStore)

	go func() {
		logger.Info("user service listening on %s (store=%s, cache=%t, auth=%t)", cfg.HTTPAddress(), cfg.StoreDriver, cfg.RedisURL != "", cfg.AuthEnabled())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.UserStore, func(), error) {
	var (
		store   storage.UserStore
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		store = memory.NewUserStore()
	default:
		pg, err := postgres.NewUserStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store = pg
		closers = append(closers, pg.Close)
	}

	if cfg.RedisURL != "" {
		client, err := cache.NewClient(cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		cached := cache.New(store, client, cfg.CacheTTL)
		if err := cached.Ping(ctx); err != nil {
			logger.Warn("redis not reachable yet, continuing: %v", err)
		}
		store = cached
		closers = append(closers, func() {
			if err := cached.Close(); err != nil {
				logger.Warn("close redis: %v", err)
			}
		})
	}

	return store, closeAll, nil
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found; relying on existing environment")
	}
}
