package md2html

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/mkd"
)

// Flags is a bitmask of rendering options. The zero value renders
// GitHub-flavored markdown with raw HTML passed through.
type Flags = mkd.Flags

// Rendering option bits.
const (
	NoLinks         = mkd.NoLinks
	NoImages        = mkd.NoImages
	NoPants         = mkd.NoPants
	NoHTML          = mkd.NoHTML
	Strict          = mkd.Strict
	NoTables        = mkd.NoTables
	NoStrikethrough = mkd.NoStrikethrough
	NoTaskLists     = mkd.NoTaskLists
	AutoLink        = mkd.AutoLink
	HeadingIDs      = mkd.TOC
	Footnotes       = mkd.Footnotes
	DefinitionLists = mkd.DefinitionLists
	HardWrap        = mkd.HardWrap
	XHTML           = mkd.XHTML
	SafeLink        = mkd.SafeLink
	Highlight       = mkd.Highlight
	Mark            = mkd.Mark

	AllFlags = mkd.AllFlags
)

// ParseFlags combines flag names such as "toc" or "nohtml".
// Matching is case-insensitive; empty names are skipped.
func ParseFlags(names []string) (Flags, error) {
	f, err := mkd.ParseNames(names)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return f, nil
}

// ParseFlagMask parses a numeric mask in decimal, hex (0x) or octal (0o).
// Bits outside AllFlags are kept and ignored by the engines.
func ParseFlagMask(s string) (Flags, error) {
	f, err := mkd.ParseMask(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return f, nil
}

// FlagNames lists every flag name accepted by ParseFlags, in bit order.
func FlagNames() []string {
	return mkd.Names()
}
