// Package gmengine adapts goldmark to the flag-bitmap engine API.
//
// Options travel in an allocated FlagBlob that the caller must release with
// FreeFlags. A parsed Document owns the buffer its HTML is rendered into
// until Cleanup hands the buffer back to a pool, so bytes returned by
// Render must be copied before the Document is cleaned up.
package gmengine

import (
	"bytes"
	"sync"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/mkd"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/sanitize"
)

// FlagBlob is the allocated option set handed to Parse and Compile.
type FlagBlob struct {
	bits mkd.Flags
}

// Flags returns the bits currently stored in the blob.
func (b *FlagBlob) Flags() mkd.Flags {
	return b.bits
}

var (
	blobPool = sync.Pool{New: func() any { return new(FlagBlob) }}
	bufPool  = sync.Pool{New: func() any { return new(bytes.Buffer) }}
)

// Document is a parsed markdown document.
type Document struct {
	md       goldmark.Markdown
	src      []byte
	root     ast.Node
	out      *bytes.Buffer
	html     []byte
	compiled bool
}

// Engine builds a goldmark instance per document from the blob's bits.
// It holds no mutable state and is safe for concurrent use.
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

// NewFlags allocates an empty FlagBlob.
func (e *Engine) NewFlags() *FlagBlob {
	b := blobPool.Get().(*FlagBlob)
	b.bits = 0
	return b
}

// SetFlags stores flags in the blob as given.
func (e *Engine) SetFlags(b *FlagBlob, flags mkd.Flags) {
	b.bits = flags
}

// FreeFlags releases a blob. The blob must not be used afterwards.
func (e *Engine) FreeFlags(b *FlagBlob) {
	if b == nil {
		return
	}
	b.bits = 0
	blobPool.Put(b)
}

// Parse builds a Document from src. It reports false for a nil blob or
// source, for source larger than mkd.MaxInputSize and for invalid UTF-8.
func (e *Engine) Parse(src []byte, b *FlagBlob) (*Document, bool) {
	if src == nil || b == nil || len(src) > mkd.MaxInputSize || !utf8.Valid(src) {
		return nil, false
	}

	src = pipeline.NormalizeSource(src, false)
	md := e.markdown(b.bits)
	root := md.Parser().Parse(text.NewReader(src))
	if root == nil {
		return nil, false
	}

	return &Document{md: md, src: src, root: root}, true
}

// Compile applies the blob's AST rewrites and renders the document into its
// buffer. A render error leaves the document uncompiled.
func (e *Engine) Compile(doc *Document, b *FlagBlob) {
	if doc == nil || doc.root == nil || b == nil {
		return
	}
	doc.compiled = false
	doc.html = nil

	rewriteLinks(doc.root, doc.src, b.bits)

	if doc.out == nil {
		doc.out = bufPool.Get().(*bytes.Buffer)
	}
	doc.out.Reset()

	if err := doc.md.Renderer().Render(doc.out, doc.src, doc.root); err != nil {
		return
	}

	out := doc.out.Bytes()
	if b.bits.Has(mkd.SafeLink) {
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

// Cleanup releases the document's buffer. The document must not be used
// afterwards.
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

// markdown maps flag bits onto a goldmark configuration.
func (e *Engine) markdown(flags mkd.Flags) goldmark.Markdown {
	var exts []goldmark.Extender
	if !flags.Has(mkd.Strict) {
		if !flags.Has(mkd.NoTables) {
			exts = append(exts, extension.Table)
		}
		if !flags.Has(mkd.NoStrikethrough) {
			exts = append(exts, extension.Strikethrough)
		}
		if !flags.Has(mkd.NoTaskLists) {
			exts = append(exts, extension.TaskList)
		}
		if !flags.Has(mkd.NoPants) {
			exts = append(exts, extension.Typographer)
		}
		if flags.Has(mkd.AutoLink) {
			exts = append(exts, extension.Linkify)
		}
		if flags.Has(mkd.Footnotes) {
			exts = append(exts, extension.Footnote)
		}
		if flags.Has(mkd.DefinitionLists) {
			exts = append(exts, extension.DefinitionList)
		}
	}
	if flags.Has(mkd.Mark) {
		exts = append(exts, markExtension{})
	}
	if flags.Has(mkd.Highlight) {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(e.highlightStyle),
			highlighting.WithFormatOptions(highlight.FormatOptions()...),
		))
	}

	var parserOpts []parser.Option
	if flags.Has(mkd.TOC) {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	var rendererOpts []renderer.Option
	if flags.Has(mkd.HardWrap) {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if flags.Has(mkd.XHTML) {
		rendererOpts = append(rendererOpts, html.WithXHTML())
	}
	if !flags.Has(mkd.NoHTML) {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// rewriteLinks unwraps links and images into their text when NoLinks or
// NoImages is set. Nodes are collected first: the tree must not change
// while it is walked.
func rewriteLinks(root ast.Node, src []byte, flags mkd.Flags) {
	noLinks, noImages := flags.Has(mkd.NoLinks), flags.Has(mkd.NoImages)
	if !noLinks && !noImages {
		return
	}

	var unwrap []ast.Node
	var autolinks []*ast.AutoLink
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			if noLinks {
				unwrap = append(unwrap, node)
			}
		case *ast.AutoLink:
			if noLinks {
				autolinks = append(autolinks, node)
			}
		case *ast.Image:
			if noImages {
				unwrap = append(unwrap, node)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, n := range unwrap {
		unwrapNode(n)
	}
	for _, al := range autolinks {
		parent := al.Parent()
		if parent == nil {
			continue
		}
		parent.ReplaceChild(parent, al, ast.NewString(al.Label(src)))
	}
}

// unwrapNode replaces n with its children.
func unwrapNode(n ast.Node) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	for c := n.FirstChild(); c != nil; {
		next := c.NextSibling()
		parent.InsertBefore(parent, n, c)
		c = next
	}
	parent.RemoveChild(parent, n)
}
