// ==============================================================================================
// FILE: repl/config.go
// PACKAGE: repl
// PURPOSE: Optional `.glade.yaml` run-control file read from the current
//          directory at REPL startup — the one piece of session
//          configuration this system has.
// ==============================================================================================

package repl

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the REPL's run-control settings.
type Config struct {
	Prompt string `yaml:"prompt"`
	Color  *bool  `yaml:"color"`
}

func defaultConfig() Config {
	on := true
	return Config{Prompt: ">> ", Color: &on}
}

// loadConfig reads `.glade.yaml` from the working directory if present,
// overlaying it on the defaults. A missing file is not an error; a
// malformed one is reported but falls back to defaults so a typo in the
// config never blocks starting the REPL.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = ">> "
	}
	if cfg.Color == nil {
		on := true
		cfg.Color = &on
	}
	return cfg, nil
}
