package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/i474232898/weather-app/internal/app"
	"github.com/i474232898/weather-app/internal/cli"
	"github.com/i474232898/weather-app/internal/config"
	"github.com/i474232898/weather-app/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Keep the prompt readable: only warnings and up go to stderr by default.
	level := cfg.LogLevel
	if level == "info" {
		level = "warn"
	}
	zl, err := logging.New(level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	sess := app.NewSession(cfg, zl)

	sched := app.NewRefreshScheduler(sess, cfg, zl)
	if err := sched.Start(); err != nil {
		zl.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Stdin, os.Stdout, sess); err != nil && ctx.Err() == nil {
		zl.Error("prompt stopped", zap.Error(err))
	}
}
