package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aaronzipp/mafia-host/internal/config"
	"github.com/aaronzipp/mafia-host/internal/dispatch"
	"github.com/aaronzipp/mafia-host/internal/game"
	"github.com/aaronzipp/mafia-host/internal/handlers"
	"github.com/aaronzipp/mafia-host/internal/sse"
	"github.com/aaronzipp/mafia-host/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	pool := dispatch.NewPool(cfg.DispatchWorkers)
	if err := pool.Start(); err != nil {
		logger.Fatal("start dispatch pool", zap.Error(err))
	}
	defer pool.Stop()

	hub := sse.NewHub(cfg.OutboxBuffer, cfg.SendTimeout)
	svc := game.NewService(store.NewGameStore(), hub,
		game.WithPool(pool),
		game.WithImages(game.DefaultRoleImages(strings.TrimRight(cfg.PublicURL, "/")+"/images")),
		game.WithDefaults(cfg.DefaultPlayers, cfg.DefaultMafia))

	ctx := &handlers.Context{Service: svc, Hub: hub, Config: cfg}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           ctx.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Addr), zap.String("bot", cfg.BotUsername))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-sigCtx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
