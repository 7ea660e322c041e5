package main

import (
	"context"
	"log"
	"os"

	"github.com/clausecraft/clausecraft-cli/internal/client/cli"
	"github.com/clausecraft/clausecraft-cli/internal/client/config"
	"github.com/clausecraft/clausecraft-cli/internal/logging"
)

// Set via -ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewConsoleLogger(os.Stderr, cfg.LogLevel)
	logger.Info(ctx, "clausecraft cli", "version", buildVersion, "built", buildDate)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
