// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// maxListed caps how many names a hint enumerates.
const maxListed = 12

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating the file in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + joinLimited(available))
}

// ForHighlightStyle returns hints for unknown chroma style errors.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("try one of: " + joinLimited(available))
}

// ForUnknownFlag lists valid markdown flag names.
func ForUnknownFlag(names []string) string {
	return formatHints([]string{
		"valid flags: " + strings.Join(names, ", "),
		"run 'md2html flags' for descriptions",
	})
}

// ForFrontMatter returns hints for front matter decode errors.
func ForFrontMatter() string {
	return format("front matter must be valid YAML between --- lines; use --no-front-matter to render it as text")
}

// ForHTMLConversion returns hints for engine failures.
func ForHTMLConversion() string {
	return format("input must be valid UTF-8 and at most 32MB")
}

// joinLimited joins names, truncating long lists.
func joinLimited(names []string) string {
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxListed], ", ") + ", ..."
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
