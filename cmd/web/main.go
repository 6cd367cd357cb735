package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hcdigital.dev/web/internal/config"
	"hcdigital.dev/web/internal/contact"
	"hcdigital.dev/web/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var opts []contact.ClientOption
	if cfg.Form.Timeout > 0 {
		opts = append(opts, contact.WithTimeout(cfg.Form.Timeout))
	}
	sender := contact.NewClient(cfg.Form.Endpoint, opts...)

	a, err := newApp(cfg, logger, sender)
	if err != nil {
		logger.Fatal("init app", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("web listening",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.Env),
		zap.Bool("dev", cfg.Dev),
		zap.String("form_endpoint", sender.Endpoint()),
	)

	<-ctx.Done()
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
