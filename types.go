package md2html

import (
	"fmt"
	"time"
)

// TOC depth bounds and defaults.
const (
	MinTOCDepth        = 1
	MaxTOCDepth        = 6
	DefaultTOCMinDepth = 2 // skip the document title
	DefaultTOCMaxDepth = 3
)

// DefaultStyle is the name of the built-in stylesheet.
const DefaultStyle = "default"

// Input contains per-document conversion parameters.
type Input struct {
	Markdown  string // markdown source, may start with front matter
	Title     string // overrides front matter and first heading
	CSS       string // appended after the converter style
	SourceDir string // directory relative links are written from
	OutputDir string // directory the HTML will be written to
}

// Result holds a converted document.
type Result struct {
	HTML  []byte
	Title string         // title used for the document head
	Meta  map[string]any // decoded front matter, nil without a block
}

// TOC configures the table of contents. Zero depths use the defaults.
type TOC struct {
	Title    string
	MinDepth int
	MaxDepth int
}

// Validate checks depth bounds. A nil TOC is valid.
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	minDepth, maxDepth := t.depths()
	if minDepth < MinTOCDepth || minDepth > MaxTOCDepth {
		return fmt.Errorf("%w: minDepth %d (must be between %d and %d)", ErrInvalidTOCDepth, minDepth, MinTOCDepth, MaxTOCDepth)
	}
	if maxDepth < MinTOCDepth || maxDepth > MaxTOCDepth {
		return fmt.Errorf("%w: maxDepth %d (must be between %d and %d)", ErrInvalidTOCDepth, maxDepth, MinTOCDepth, MaxTOCDepth)
	}
	if minDepth > maxDepth {
		return fmt.Errorf("%w: minDepth %d greater than maxDepth %d", ErrInvalidTOCDepth, minDepth, maxDepth)
	}
	return nil
}

func (t *TOC) depths() (int, int) {
	minDepth, maxDepth := t.MinDepth, t.MaxDepth
	if minDepth == 0 {
		minDepth = DefaultTOCMinDepth
	}
	if maxDepth == 0 {
		maxDepth = DefaultTOCMaxDepth
	}
	return minDepth, maxDepth
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the values collected from options.
type converterConfig struct {
	flags          Flags
	timeout        time.Duration
	styleInput     string // name, file path or raw CSS; "" means none
	resolvedStyle  string
	assetPath      string
	highlightStyle string
	fragment       bool
	toc            *TOC
	noFrontMatter  bool
}

// defaultTimeout bounds a single conversion.
const defaultTimeout = 30 * time.Second

// WithFlags sets the rendering option bits.
func WithFlags(flags Flags) Option {
	return func(c *Converter) {
		c.cfg.flags = flags
	}
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle selects the stylesheet: a style name, a path to a .css file, or
// raw CSS. An empty string disables the stylesheet.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/{name}.css files override the
// embedded styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom style loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithHighlightStyle sets the chroma style used with the Highlight flag.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}

// WithStandalone controls whether output is a full HTML5 document (the
// default) or a bare fragment without stylesheet.
func WithStandalone(standalone bool) Option {
	return func(c *Converter) {
		c.cfg.fragment = !standalone
	}
}

// WithTOC injects a table of contents. It forces the HeadingIDs flag so
// headings carry ids. A nil TOC disables it.
func WithTOC(toc *TOC) Option {
	return func(c *Converter) {
		c.cfg.toc = toc
	}
}

// WithFrontMatter controls front matter splitting (enabled by default).
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.noFrontMatter = !enabled
	}
}
