// Package highlight renders fenced code with chroma.
//
// Output always uses CSS classes rather than inline styles, so a document
// needs the stylesheet from WriteCSS for colors. Both engines share this
// convention, which keeps their highlighted markup interchangeable.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// ErrUnknownStyle indicates the chroma style name is not registered.
var ErrUnknownStyle = errors.New("unknown highlight style")

var formatter = chromahtml.New(chromahtml.WithClasses(true))

// FormatOptions returns the chroma formatter options used for code blocks.
func FormatOptions() []chromahtml.Option {
	return []chromahtml.Option{chromahtml.WithClasses(true)}
}

// Style resolves a style name. Empty means DefaultStyle.
func Style(name string) (*chroma.Style, error) {
	if name == "" {
		name = DefaultStyle
	}
	s, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// StyleNames lists the registered style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteCSS writes the class stylesheet for a style.
func WriteCSS(w io.Writer, styleName string) error {
	s, err := Style(styleName)
	if err != nil {
		return err
	}
	return formatter.WriteCSS(w, s)
}

// CSS returns the class stylesheet for a style as a string.
func CSS(styleName string) (string, error) {
	var sb strings.Builder
	if err := WriteCSS(&sb, styleName); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Code writes a highlighted <pre> block for code in the given language.
// The info string of a fence may carry attributes after the language; only
// the first word is used. Unknown languages fall back to plain text.
func Code(w io.Writer, code []byte, info, styleName string) error {
	s, err := Style(styleName)
	if err != nil {
		return err
	}

	lexer := lexers.Get(language(info))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, string(code))
	if err != nil {
		return fmt.Errorf("tokenising %s code: %w", lexer.Config().Name, err)
	}
	return formatter.Format(w, s, it)
}

func language(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "{}.")
}
