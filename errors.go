package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrFrontMatter    = pipeline.ErrFrontMatter

	// Option validation errors.
	ErrInvalidFlag           = errors.New("invalid markdown flag")
	ErrInvalidTOCDepth       = errors.New("invalid TOC depth")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
