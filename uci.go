package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"refute/config"
	"refute/engine"
	"refute/logging"
	"refute/uci"
)

func main() {
	cfgPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := uci.NewDispatcher(uciConfig(cfg), os.Stdout, logger)
	logger.Info("engine started", zap.String("name", cfg.EngineName), zap.Int("default_depth", cfg.DefaultDepth))
	if err := d.Run(ctx, os.Stdin); err != nil {
		logger.Error("reading commands", zap.Error(err))
	}
	logger.Info("engine stopped")
}

func uciConfig(cfg *config.Config) uci.Config {
	return uci.Config{
		Name:   cfg.EngineName,
		Author: cfg.EngineAuthor,
		Options: engine.Options{
			DefaultDepth:    cfg.DefaultDepth,
			MaxDepth:        cfg.MaxDepth,
			PawnAdvancement: cfg.PawnAdvancement,
		},
	}
}
