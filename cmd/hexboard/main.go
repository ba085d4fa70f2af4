// Package main is the entry point for the hex board viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/app"
	"github.com/ElliotMtb/battlefield-hexagons/internal/config"
	"github.com/ElliotMtb/battlefield-hexagons/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Battlefield Hexagons ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return
	}

	logger.Info("viewer closed normally")
}
