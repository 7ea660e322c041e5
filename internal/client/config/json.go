package config

import (
	"encoding/json"
	"os"

	"github.com/clausecraft/clausecraft-cli/internal/flagx"
)

// parseJSONFromFlags overlays cfg with the JSON config file named by the
// -c/-config flags, if any. A missing flag is not an error.
func parseJSONFromFlags(cfg *Config) error {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return nil
	}
	return parseJSONFile(cfg, path)
}

func parseJSONFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}
