// Package bfengine adapts blackfriday v2 to the plain-integer engine API.
//
// Options are passed by value as an int carrying mkd.Flags bits. As with
// gmengine, a Document renders into a pooled buffer that is reused after
// Cleanup.
package bfengine

import (
	"bytes"
	"io"
	"sync"
	"unicode/utf8"

	bf "github.com/russross/blackfriday/v2"

	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/mkd"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/sanitize"
)

var bufPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// Document is a parsed markdown document.
type Document struct {
	src      []byte
	root     *bf.Node
	out      *bytes.Buffer
	html     []byte
	compiled bool
}

// Engine parses with the extensions selected by the flag bits and renders
// with blackfriday's HTML renderer. It is safe for concurrent use.
type Engine struct {
	highlightStyle string
}

// Option configures an Engine.
type Option func(*Engine)

// WithHighlightStyle sets the chroma style used when Highlight is set.
func WithHighlightStyle(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.highlightStyle = name
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{highlightStyle: highlight.DefaultStyle}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse builds a Document from src. It reports false for a nil source, for
// source larger than mkd.MaxInputSize and for invalid UTF-8.
func (e *Engine) Parse(src []byte, flags int) (*Document, bool) {
	if src == nil || len(src) > mkd.MaxInputSize || !utf8.Valid(src) {
		return nil, false
	}

	bits := toFlags(flags)
	src = pipeline.NormalizeSource(src, bits.Has(mkd.Mark))
	root := bf.New(bf.WithExtensions(extensions(bits))).Parse(src)
	if root == nil {
		return nil, false
	}

	return &Document{src: src, root: root}, true
}

// Compile applies the AST rewrites selected by flags and renders the
// document into its buffer.
func (e *Engine) Compile(doc *Document, flags int) {
	if doc == nil || doc.root == nil {
		return
	}
	bits := toFlags(flags)
	doc.compiled = false
	doc.html = nil

	rewriteLinks(doc.root, bits)

	if doc.out == nil {
		doc.out = bufPool.Get().(*bytes.Buffer)
	}
	doc.out.Reset()

	r := e.renderer(bits)
	r.RenderHeader(doc.out, doc.root)
	doc.root.Walk(func(n *bf.Node, entering bool) bf.WalkStatus {
		return r.RenderNode(doc.out, n, entering)
	})
	r.RenderFooter(doc.out, doc.root)

	out := doc.out.Bytes()
	if bits.Has(mkd.Mark) {
		out = pipeline.ConvertMarkPlaceholders(out)
	}
	if bits.Has(mkd.SafeLink) {
		out = sanitize.HTML(out)
	}
	doc.html = out
	doc.compiled = true
}

// Render returns the compiled HTML. The slice aliases the document's buffer.
func (e *Engine) Render(doc *Document) ([]byte, bool) {
	if doc == nil || !doc.compiled {
		return nil, false
	}
	return doc.html, true
}

// Cleanup releases the document's buffer.
func (e *Engine) Cleanup(doc *Document) {
	if doc == nil {
		return
	}
	if doc.out != nil {
		doc.out.Reset()
		bufPool.Put(doc.out)
	}
	*doc = Document{}
}

func toFlags(flags int) mkd.Flags {
	return mkd.Flags(uint32(flags))
}

// extensions maps flag bits onto blackfriday parser extensions.
// Blackfriday has no task list syntax, so NoTaskLists has no effect.
func extensions(flags mkd.Flags) bf.Extensions {
	ext := bf.NoIntraEmphasis | bf.FencedCode | bf.SpaceHeadings | bf.BackslashLineBreak
	if !flags.Has(mkd.Strict) {
		if !flags.Has(mkd.NoTables) {
			ext |= bf.Tables
		}
		if !flags.Has(mkd.NoStrikethrough) {
			ext |= bf.Strikethrough
		}
		if flags.Has(mkd.AutoLink) {
			ext |= bf.Autolink
		}
		if flags.Has(mkd.Footnotes) {
			ext |= bf.Footnotes
		}
		if flags.Has(mkd.DefinitionLists) {
			ext |= bf.DefinitionLists
		}
	}
	if flags.Has(mkd.HardWrap) {
		ext |= bf.HardLineBreak
	}
	if flags.Has(mkd.TOC) {
		ext |= bf.AutoHeadingIDs
	}
	return ext
}

// htmlFlags maps flag bits onto blackfriday renderer flags.
func htmlFlags(flags mkd.Flags) bf.HTMLFlags {
	var hf bf.HTMLFlags
	if !flags.Has(mkd.Strict) && !flags.Has(mkd.NoPants) {
		hf |= bf.Smartypants | bf.SmartypantsFractions | bf.SmartypantsDashes | bf.SmartypantsLatexDashes
	}
	if flags.Has(mkd.NoHTML) {
		hf |= bf.SkipHTML
	}
	if flags.Has(mkd.XHTML) {
		hf |= bf.UseXHTML
	}
	if flags.Has(mkd.SafeLink) {
		hf |= bf.Safelink
	}
	if flags.Has(mkd.Footnotes) {
		hf |= bf.FootnoteReturnLinks
	}
	return hf
}

func (e *Engine) renderer(flags mkd.Flags) bf.Renderer {
	base := bf.NewHTMLRenderer(bf.HTMLRendererParameters{Flags: htmlFlags(flags)})
	if !flags.Has(mkd.Highlight) {
		return base
	}
	return &highlightRenderer{HTMLRenderer: base, style: e.highlightStyle}
}

// highlightRenderer formats fenced code with chroma and defers everything
// else to the embedded HTML renderer.
type highlightRenderer struct {
	*bf.HTMLRenderer
	style string
}

func (r *highlightRenderer) RenderNode(w io.Writer, node *bf.Node, entering bool) bf.WalkStatus {
	if node.Type == bf.CodeBlock {
		var buf bytes.Buffer
		if err := highlight.Code(&buf, node.Literal, string(node.Info), r.style); err == nil {
			_, _ = w.Write(buf.Bytes())
			return bf.GoToNext
		}
	}
	return r.HTMLRenderer.RenderNode(w, node, entering)
}

// rewriteLinks replaces links and images with their children when NoLinks
// or NoImages is set. The renderer's own SkipImages would drop alt text.
func rewriteLinks(root *bf.Node, flags mkd.Flags) {
	noLinks, noImages := flags.Has(mkd.NoLinks), flags.Has(mkd.NoImages)
	if !noLinks && !noImages {
		return
	}

	var unwrap []*bf.Node
	root.Walk(func(n *bf.Node, entering bool) bf.WalkStatus {
		if !entering {
			return bf.GoToNext
		}
		if (n.Type == bf.Link && noLinks && n.NoteID == 0) || (n.Type == bf.Image && noImages) {
			unwrap = append(unwrap, n)
		}
		return bf.GoToNext
	})

	for _, n := range unwrap {
		for c := n.FirstChild; c != nil; {
			next := c.Next
			c.Unlink()
			n.InsertBefore(c)
			c = next
		}
		n.Unlink()
	}
}
