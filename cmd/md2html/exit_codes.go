package main

import (
	"context"
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/mkd"
)

// Exit codes for md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2html.ErrInvalidFlag) ||
		errors.Is(err, md2html.ErrInvalidTOCDepth) ||
		errors.Is(err, md2html.ErrUnknownHighlightStyle) ||
		errors.Is(err, md2html.ErrStyleNotFound) ||
		errors.Is(err, md2html.ErrInvalidAssetPath) ||
		errors.Is(err, md2html.ErrFrontMatter) ||
		errors.Is(err, fileutil.ErrExtensionEmpty) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}

// describeError renders err followed by an actionable hint when one applies.
func describeError(err error) string {
	msg := err.Error()

	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound(configSearchPaths())
	case errors.Is(err, mkd.ErrUnknownFlag):
		msg += hints.ForUnknownFlag(md2html.FlagNames())
	case errors.Is(err, md2html.ErrUnknownHighlightStyle):
		msg += hints.ForHighlightStyle(highlight.StyleNames())
	case errors.Is(err, md2html.ErrStyleNotFound):
		names, _ := md2html.StyleNames("")
		msg += hints.ForStyleNotFound(names)
	case errors.Is(err, md2html.ErrFrontMatter):
		msg += hints.ForFrontMatter()
	case errors.Is(err, md2html.ErrHTMLConversion):
		msg += hints.ForHTMLConversion()
	case errors.Is(err, ErrCreateOutputDir):
		msg += hints.ForOutputDirectory()
	case errors.Is(err, context.DeadlineExceeded):
		msg += hints.ForTimeout()
	}

	return msg
}
