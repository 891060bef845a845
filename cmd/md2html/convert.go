package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/mkd"
)

// stdinMarker selects standard input as the markdown source.
const stdinMarker = "-"

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadMarkdown    = errors.New("failed to read markdown")
	ErrWriteHTML       = errors.New("failed to write HTML")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrBatchFailed     = errors.New("conversion failed")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Priority: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := buildOptions(cfg, env)
	if err != nil {
		return err
	}
	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if inputPath == stdinMarker {
		return convertStdin(ctx, conv, cfg.Output.DefaultDir, env)
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	workers := resolveWorkers(cfg.Batch.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s) using %s\n", len(files), min(workers, len(files)), md2html.EngineName)
	}

	results := convertBatch(ctx, conv, files, workers)
	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s): %w", ErrBatchFailed, failed, len(results), firstError(results))
	}

	return nil
}

// loadConfig loads the named config, falling back to MD2HTML_CONFIG.
// Without either, the defaults apply.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags applies explicitly set CLI flags on top of cfg.
func mergeFlags(f *convertFlags, cfg *config.Config) {
	if f.output != "" {
		cfg.Output.DefaultDir = f.output
	}
	if f.workers > 0 {
		cfg.Batch.Workers = f.workers
	}
	if f.timeout != "" {
		cfg.Batch.Timeout = f.timeout
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}

	if len(f.markdown.names) > 0 {
		cfg.Markdown.Flags = f.markdown.names
	}
	if f.markdown.mask != "" {
		cfg.Markdown.Mask = f.markdown.mask
	}

	if f.html.style != "" {
		cfg.HTML.Style = f.html.style
		cfg.HTML.NoStyle = false
	}
	if f.html.noStyle {
		cfg.HTML.NoStyle = true
	}
	if f.html.highlightStyle != "" {
		cfg.HTML.HighlightStyle = f.html.highlightStyle
	}
	if f.html.fragment {
		cfg.HTML.Fragment = true
	}
	if f.html.noFrontMatter {
		cfg.HTML.SkipFrontMatter = true
	}

	if f.toc.enabled {
		cfg.TOC.Enabled = true
	}
	if f.toc.title != "" {
		cfg.TOC.Title = f.toc.title
	}
	if f.toc.minDepth != 0 {
		cfg.TOC.MinDepth = f.toc.minDepth
	}
	if f.toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = f.toc.maxDepth
	}
}

// buildOptions translates a validated config into converter options.
func buildOptions(cfg *config.Config, env *Environment) ([]md2html.Option, error) {
	flags, err := cfg.Markdown.Resolve()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.Batch.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	style := cfg.HTML.Style
	if cfg.HTML.NoStyle {
		style = ""
	}

	opts := []md2html.Option{
		md2html.WithFlags(flags),
		md2html.WithStyle(style),
		md2html.WithStandalone(!cfg.HTML.Fragment),
		md2html.WithFrontMatter(!cfg.HTML.SkipFrontMatter),
	}
	if timeout > 0 {
		opts = append(opts, md2html.WithTimeout(timeout))
	}
	if cfg.HTML.HighlightStyle != "" {
		opts = append(opts, md2html.WithHighlightStyle(cfg.HTML.HighlightStyle))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2html.WithAssetPath(cfg.Assets.BasePath))
	} else if env.AssetLoader != nil {
		opts = append(opts, md2html.WithAssetLoader(env.AssetLoader))
	}
	if cfg.TOC.Enabled {
		opts = append(opts, md2html.WithTOC(&md2html.TOC{
			Title:    cfg.TOC.Title,
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
		}))
	}

	return opts, nil
}

// resolveInputPath picks the positional input, then input.defaultDir.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// convertStdin converts standard input. The result goes to output when it
// is set, to stdout otherwise.
func convertStdin(ctx context.Context, conv CLIConverter, output string, env *Environment) error {
	content, err := io.ReadAll(io.LimitReader(env.Stdin, int64(mkd.MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	input := md2html.Input{Markdown: string(content)}
	if output != "" {
		input.SourceDir = "."
		input.OutputDir = filepath.Dir(output)
	}

	result, err := conv.Convert(ctx, input)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := env.Stdout.Write(result.HTML)
		return err
	}
	return writeOutput(output, result.HTML)
}

// writeOutput writes html to path, creating parent directories.
func writeOutput(path string, html []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := fileutil.WriteFileAtomic(path, html, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// configSearchPaths returns the user-level config location shown in hints.
func configSearchPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, config.AppDirName, "config.yaml")}
}

