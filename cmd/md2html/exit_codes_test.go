package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/mkd"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"create output dir", ErrCreateOutputDir, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid flag", md2html.ErrInvalidFlag, ExitUsage},
		{"invalid toc depth", md2html.ErrInvalidTOCDepth, ExitUsage},
		{"unknown highlight style", md2html.ErrUnknownHighlightStyle, ExitUsage},
		{"style not found", md2html.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", md2html.ErrInvalidAssetPath, ExitUsage},
		{"front matter", md2html.ErrFrontMatter, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"html conversion", md2html.ErrHTMLConversion, ExitGeneral},
		{"deadline", context.DeadlineExceeded, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Values(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDescribeError - Hints
// ---------------------------------------------------------------------------

func TestDescribeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"unknown flag", fmt.Errorf("%w: %w", config.ErrInvalidValue, mkd.ErrUnknownFlag), "valid flags:"},
		{"highlight style", md2html.ErrUnknownHighlightStyle, "try one of:"},
		{"style not found", md2html.ErrStyleNotFound, "available:"},
		{"front matter", md2html.ErrFrontMatter, "--no-front-matter"},
		{"conversion", md2html.ErrHTMLConversion, "UTF-8"},
		{"output dir", ErrCreateOutputDir, "writable"},
		{"timeout", fmt.Errorf("converting to HTML: %w", context.DeadlineExceeded), "--timeout"},
		{"no hint", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := describeError(tt.err)
			if !strings.HasPrefix(got, tt.err.Error()) {
				t.Errorf("describeError() = %q, want prefix %q", got, tt.err.Error())
			}
			if tt.wantHint == "" {
				if strings.Contains(got, "hint:") {
					t.Errorf("describeError() = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got, tt.wantHint) {
				t.Errorf("describeError() = %q, want hint containing %q", got, tt.wantHint)
			}
		})
	}
}
