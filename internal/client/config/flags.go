package config

import (
	"flag"
	"os"

	"github.com/clausecraft/clausecraft-cli/internal/flagx"
)

// parseFlagsFromArgs overlays cfg with the command-line flags owned by
// this stage. Flags belonging to other stages (-c/-config) are skipped.
func parseFlagsFromArgs(cfg *Config) {
	parseFlags(cfg, os.Args[1:])
}

func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "backend API base URL")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "path to the client state database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	_ = fs.Parse(args)
}
