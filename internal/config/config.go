package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/mkd"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxStyleLength    = 4096 // a name, a path or short inline CSS
	MaxNameLength     = 64   // highlight style
	MaxTOCTitleLength = 100
	MaxFlagCount      = 32
	MaxWorkers        = 64
)

// AppDirName is the directory searched under the user config dir.
const AppDirName = "go-md2html"

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Markdown MarkdownConfig `yaml:"markdown"`
	HTML     HTMLConfig     `yaml:"html"`
	TOC      TOCConfig      `yaml:"toc"`
	Assets   AssetsConfig   `yaml:"assets"`
	Batch    BatchConfig    `yaml:"batch"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to each source
}

// MarkdownConfig selects rendering bits. Named flags and the numeric mask
// are OR-ed together.
type MarkdownConfig struct {
	Flags []string `yaml:"flags"` // e.g. [toc, footnotes, highlight]
	Mask  string   `yaml:"mask"`  // decimal, 0x hex or 0o octal
}

// HTMLConfig defines page output options.
type HTMLConfig struct {
	Style           string `yaml:"style"`           // name, .css path or inline CSS (empty = default)
	NoStyle         bool   `yaml:"noStyle"`         // disable the stylesheet
	HighlightStyle  string `yaml:"highlightStyle"`  // chroma style name
	Fragment        bool   `yaml:"fragment"`        // emit a bare fragment
	SkipFrontMatter bool   `yaml:"skipFrontMatter"` // render front matter as markdown
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`    // empty = no title above the TOC
	MinDepth int    `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded styles only
}

// BatchConfig defines directory conversion options.
type BatchConfig struct {
	Workers int    `yaml:"workers"` // 0 = GOMAXPROCS
	Timeout string `yaml:"timeout"` // per document, e.g. "30s"
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"html.style", c.HTML.Style, MaxStyleLength},
		{"html.highlightStyle", c.HTML.HighlightStyle, MaxNameLength},
		{"toc.title", c.TOC.Title, MaxTOCTitleLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if len(c.Markdown.Flags) > MaxFlagCount {
		return fmt.Errorf("%w: markdown.flags (%d entries, max %d)", ErrFieldTooLong, len(c.Markdown.Flags), MaxFlagCount)
	}
	if _, err := c.Markdown.Resolve(); err != nil {
		return err
	}

	if err := c.TOC.validate(); err != nil {
		return err
	}

	if c.Batch.Workers < 0 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("%w: batch.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Batch.Workers)
	}
	if _, err := c.Batch.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// Resolve combines the named flags and the mask.
func (m MarkdownConfig) Resolve() (mkd.Flags, error) {
	flags, err := mkd.ParseNames(m.Flags)
	if err != nil {
		return 0, fmt.Errorf("%w: markdown.flags: %w", ErrInvalidValue, err)
	}
	if strings.TrimSpace(m.Mask) != "" {
		mask, err := mkd.ParseMask(m.Mask)
		if err != nil {
			return 0, fmt.Errorf("%w: markdown.mask: %w", ErrInvalidValue, err)
		}
		flags |= mask
	}
	return flags, nil
}

func (t TOCConfig) validate() error {
	for _, d := range []struct {
		name  string
		value int
	}{
		{"toc.minDepth", t.MinDepth},
		{"toc.maxDepth", t.MaxDepth},
	} {
		if d.value != 0 && (d.value < 1 || d.value > 6) {
			return fmt.Errorf("%w: %s must be between 1 and 6, got %d", ErrInvalidValue, d.name, d.value)
		}
	}
	if t.MinDepth != 0 && t.MaxDepth != 0 && t.MinDepth > t.MaxDepth {
		return fmt.Errorf("%w: toc.minDepth (%d) greater than toc.maxDepth (%d)", ErrInvalidValue, t.MinDepth, t.MaxDepth)
	}
	return nil
}

// TimeoutDuration parses Timeout. An empty value returns 0.
func (b BatchConfig) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: batch.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: batch.timeout must be positive, got %s", ErrInvalidValue, b.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file:
// default style, standalone pages, front matter on, TOC off.
func DefaultConfig() *Config {
	return &Config{
		HTML: HTMLConfig{Style: "default"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s:\n%s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump encodes the configuration as YAML.
func (c *Config) Dump() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-md2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
