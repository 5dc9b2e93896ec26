package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moi/pkg/config"
	"moi/pkg/logger"
	"moi/pkg/places"
	"moi/pkg/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title Merchants of Interest API
// @version 1.0
// @description Gateway to the Mastercard Places merchant-location API.
// @host localhost:3000
// @BasePath /
func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (yaml or json)")
	writeConfig := flag.String("write-config", "", "write the effective configuration to this path (yaml or json) and exit")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	if *writeConfig != "" {
		if err := config.SaveConfig(cfg, *writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			return 1
		}
		fmt.Printf("Configuration written to %s\n", *writeConfig)
		return 0
	}

	if err := logger.InitLogger(!cfg.IsProduction(), cfg.App.LogFile, cfg.App.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if err := cfg.ValidateConfig(); err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return 1
	}
	logger.SetCallerDisplayMode(logger.ParseCallerDisplayMode(cfg.App.LogCaller))

	logger.Info("Starting merchants-of-interest gateway",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port))

	provider := places.NewClient(cfg.GetPlacesConfig(), cfg.IsProduction())
	if !cfg.GetPlacesConfig().HasCredentials() {
		logger.Warn("Places credentials not configured; provider calls will fail until they are set")
	}

	srv := server.NewHTTPServer(&server.Config{
		Address: cfg.Server.Address,
		Port:    cfg.Server.Port,
		Config:  cfg,
	}, provider)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-srvErr:
		var listenErr *server.ListenError
		if errors.As(err, &listenErr) {
			logger.Error("Unable to listen", zap.String("reason", listenErr.Error()))
			return 1
		}
		if err != nil {
			logger.Error("Server error", zap.Error(err))
			return 1
		}
		return 0
	}

	timeout := time.Duration(cfg.Server.GracefulShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return 1
	}
	logger.Info("Server stopped")
	return 0
}
