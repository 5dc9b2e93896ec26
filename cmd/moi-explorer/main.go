package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"moi/pkg/config"
	"moi/pkg/logger"
	"moi/pkg/mapclient"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// moi-explorer runs the map client headless: it loads the lookups from a
// gateway, searches around one point and prints every marker with its popup.
func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup always happens.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	clientCfg := cfg.GetClientConfig()

	fs := flag.NewFlagSet("moi-explorer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		gatewayURL = fs.String("gateway", clientCfg.GatewayURL, "query gateway base URL")
		lat        = fs.Float64("lat", clientCfg.DefaultLat, "search origin latitude")
		lng        = fs.Float64("lng", clientCfg.DefaultLng, "search origin longitude")
		country    = fs.String("country", "", "search origin country code")
		production = fs.Bool("production", cfg.IsProduction(), "query the gateway instead of the bundled sample")
		logLevel   = fs.String("log-level", "warn", "log level")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := logger.InitLogger(true, "", *logLevel); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	timeout := time.Duration(clientCfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	gateway := mapclient.NewHTTPGateway(*gatewayURL, timeout)
	notifier := mapclient.NotifierFunc(func(message string) {
		fmt.Fprintf(stderr, "notice: %s\n", message)
	})

	controller := mapclient.New(gateway, notifier,
		mapclient.WithProduction(*production),
		mapclient.WithDefaultView(clientCfg.DefaultLat, clientCfg.DefaultLng, clientCfg.DefaultZoom))
	defer controller.Close()

	if err := controller.Start(ctx); err != nil {
		logger.Warn("Lookups incomplete, codes will be shown raw", zap.Error(err))
	}

	consoleMap := mapclient.NewConsoleMap(stdout)
	controller.AttachMap(consoleMap)

	render, err := controller.SearchAndDisplay(ctx, mapclient.Location{Lat: *lat, Lng: *lng, CountryCode: *country})
	if errors.Is(err, mapclient.ErrNoResults) {
		return 0
	}
	if err != nil {
		logger.Error("Search failed", zap.Error(err))
		fmt.Fprintf(stderr, "search failed: %v\n", err)
		return 1
	}

	for _, marker := range render.Markers {
		if cm, ok := marker.(*mapclient.ConsoleMarker); ok {
			cm.Click()
		}
	}
	fmt.Fprintf(stdout, "%d merchants around %.6f,%.6f\n", len(render.Markers), *lat, *lng)
	return 0
}
