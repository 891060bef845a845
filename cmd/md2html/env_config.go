package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MD2HTML_CONFIG: config file name or path
	Style      string        // MD2HTML_STYLE: CSS style name or path
	Flags      []string      // MD2HTML_FLAGS: comma separated flag names
	Timeout    time.Duration // MD2HTML_TIMEOUT: per-document timeout
	Workers    int           // MD2HTML_WORKERS: parallel workers
	InputDir   string        // MD2HTML_INPUT_DIR: default input directory
	OutputDir  string        // MD2HTML_OUTPUT_DIR: default output directory
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_STYLE":      true,
	"MD2HTML_FLAGS":      true,
	"MD2HTML_TIMEOUT":    true,
	"MD2HTML_WORKERS":    true,
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		Style:      os.Getenv("MD2HTML_STYLE"),
		InputDir:   os.Getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
	}

	if flags := os.Getenv("MD2HTML_FLAGS"); flags != "" {
		for _, name := range strings.Split(flags, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Flags = append(cfg.Flags, name)
			}
		}
	}

	if timeout := os.Getenv("MD2HTML_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment values on the loaded config.
// Set variables win over the config file; CLI flags are applied
// afterwards by mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.HTML.Style = env.Style
	}
	if len(env.Flags) > 0 {
		cfg.Markdown.Flags = env.Flags
	}
	if env.Timeout > 0 {
		cfg.Batch.Timeout = env.Timeout.String()
	}
	if env.Workers > 0 {
		cfg.Batch.Workers = env.Workers
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
