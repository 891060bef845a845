package md2html

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.CSSInjector = (*pipeline.CSSInjection)(nil)
	_ pipeline.TOCInjector = (*pipeline.TOCInjection)(nil)
)

// renderFunc renders a markdown body with one engine configuration.
type renderFunc func(src []byte, flags Flags) ([]byte, bool)

// Converter turns markdown documents into HTML pages.
// A Converter is safe for concurrent use once created.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	render            renderFunc
	cssInjector       pipeline.CSSInjector
	tocInjector       pipeline.TOCInjector
	highlightCSS      string
}

// publicToInternalAdapter wraps a public AssetLoader as an internal one.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

// NewConverter creates a Converter. Without options it renders standalone
// documents with the default style and front matter support.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:    defaultTimeout,
			styleInput: DefaultStyle,
		},
		assetLoader: assets.NewEmbeddedLoader(),
		cssInjector: &pipeline.CSSInjection{},
		tocInjector: pipeline.NewTOCInjection(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.toc.Validate(); err != nil {
		return nil, err
	}
	if c.cfg.toc != nil {
		c.cfg.flags |= HeadingIDs
	}

	if _, err := highlight.Style(c.cfg.highlightStyle); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, c.cfg.highlightStyle)
	}
	if c.cfg.flags.Has(Highlight) && !c.cfg.fragment {
		css, err := highlight.CSS(c.cfg.highlightStyle)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownHighlightStyle, err)
		}
		c.highlightCSS = css
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	if !c.cfg.fragment {
		if err := c.resolveStyle(); err != nil {
			return nil, err
		}
	}

	if c.render == nil {
		c.render = newRenderFunc(c.cfg.highlightStyle)
	}

	return c, nil
}

// Flags returns the rendering bits the converter passes to the engine,
// including bits forced by other options.
func (c *Converter) Flags() Flags {
	return c.cfg.flags
}

// Convert renders input and returns the page.
// The context is checked between stages; rendering itself is bounded by the
// converter timeout. Recovers from internal panics.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := []byte(input.Markdown)
	var fm *pipeline.FrontMatter
	if !c.cfg.noFrontMatter {
		fm, body, err = pipeline.SplitFrontMatter(body)
		if err != nil {
			// err already carries the ErrFrontMatter prefix.
			return nil, err
		}
	}

	rendered, err := c.renderWithTimeout(ctx, body)
	if err != nil {
		return nil, err
	}
	htmlContent := string(rendered)

	if input.SourceDir != "" && input.OutputDir != "" {
		htmlContent, err = pipeline.RebaseRelativePaths(htmlContent, input.SourceDir, input.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("rebasing relative paths: %w", err)
		}
	}

	title := resolveTitle(input.Title, fm, htmlContent)

	if c.cfg.toc != nil {
		minDepth, maxDepth := c.cfg.toc.depths()
		htmlContent, err = c.tocInjector.InjectTOC(ctx, htmlContent, &pipeline.TOCData{
			Title:    c.cfg.toc.Title,
			MinDepth: minDepth,
			MaxDepth: maxDepth,
		})
		if err != nil {
			return nil, fmt.Errorf("injecting TOC: %w", err)
		}
	}

	if !c.cfg.fragment {
		htmlContent = pipeline.WrapDocument(htmlContent, c.documentData(title, fm))
		htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.buildCSS(input.CSS))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	res := &Result{
		HTML:  []byte(htmlContent),
		Title: title,
	}
	if fm != nil {
		res.Meta = fm.Raw
	}
	return res, nil
}

// renderWithTimeout runs the engine on its own goroutine so a cancelled
// context or an expired timeout returns promptly. The engine run itself is
// not interruptible and finishes in the background.
func (c *Converter) renderWithTimeout(ctx context.Context, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	type outcome struct {
		html []byte
		ok   bool
	}
	done := make(chan outcome, 1)
	go func() {
		out, ok := c.render(body, c.cfg.flags)
		done <- outcome{out, ok}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("converting to HTML: %w", ctx.Err())
	case o := <-done:
		if !o.ok {
			return nil, ErrHTMLConversion
		}
		return o.html, nil
	}
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// buildCSS joins the converter style, the highlight stylesheet and the
// per-document CSS. Later rules override earlier ones.
func (c *Converter) buildCSS(extra string) string {
	parts := make([]string, 0, 3)
	for _, css := range []string{c.cfg.resolvedStyle, c.highlightCSS, extra} {
		if css = strings.TrimSpace(css); css != "" {
			parts = append(parts, css)
		}
	}
	return strings.Join(parts, "\n")
}

func (c *Converter) documentData(title string, fm *pipeline.FrontMatter) pipeline.DocumentData {
	data := pipeline.DocumentData{
		Title: title,
		XHTML: c.cfg.flags.Has(XHTML),
	}
	if fm != nil {
		data.Lang = fm.Lang
		data.Description = fm.Description
		data.Author = fm.Author
		data.Keywords = fm.Keywords
	}
	return data
}

// resolveTitle picks the explicit title, then the front matter title, then
// the first <h1>, then DefaultTitle.
func resolveTitle(explicit string, fm *pipeline.FrontMatter, htmlContent string) string {
	if t := strings.TrimSpace(explicit); t != "" {
		return t
	}
	if fm != nil {
		if t := strings.TrimSpace(fm.Title); t != "" {
			return t
		}
	}
	if t := pipeline.FirstHeading(htmlContent); t != "" {
		return t
	}
	return pipeline.DefaultTitle
}

// Timeout returns the per-conversion timeout.
func (c *Converter) Timeout() time.Duration {
	return c.cfg.timeout
}
