// Package mkd defines the option bits shared by the markdown engines.
//
// Both engines read the same Flags value. Bits named No* switch off a
// feature that is on by default, the others switch on an optional one, so a
// zero value renders GitHub-flavored markdown with raw HTML allowed.
package mkd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Flags is a bitmask of rendering options.
type Flags uint32

// Option bits. Values are part of the public contract and never renumbered.
const (
	NoLinks         Flags = 1 << iota // render links as their text
	NoImages                          // render images as their alt text
	NoPants                           // disable typographic quotes and dashes
	NoHTML                            // drop raw HTML from the input
	Strict                            // plain CommonMark, every extension off
	NoTables                          // disable pipe tables
	NoStrikethrough                   // disable ~~deleted~~
	NoTaskLists                       // disable - [ ] checkboxes
	AutoLink                          // turn bare URLs into links
	TOC                               // give headings id attributes
	Footnotes                         // enable [^1] footnotes
	DefinitionLists                   // enable term / : definition lists
	HardWrap                          // render newlines as <br>
	XHTML                             // emit self-closing void tags
	SafeLink                          // sanitize output, keep only safe URLs
	Highlight                         // syntax highlight fenced code
	Mark                              // render ==text== as <mark>
)

// AllFlags is the union of every defined bit.
const AllFlags = Mark<<1 - 1

// MaxInputSize caps the number of bytes an engine accepts (default 32MB).
var MaxInputSize = 32 << 20

// Sentinel errors for flag parsing.
var (
	ErrUnknownFlag = errors.New("unknown markdown flag")
	ErrInvalidMask = errors.New("invalid flag mask")
)

var flagNames = []struct {
	name string
	flag Flags
}{
	{"nolinks", NoLinks},
	{"noimages", NoImages},
	{"nopants", NoPants},
	{"nohtml", NoHTML},
	{"strict", Strict},
	{"notables", NoTables},
	{"nostrikethrough", NoStrikethrough},
	{"notasklists", NoTaskLists},
	{"autolink", AutoLink},
	{"toc", TOC},
	{"footnotes", Footnotes},
	{"dlists", DefinitionLists},
	{"hardwrap", HardWrap},
	{"xhtml", XHTML},
	{"safelink", SafeLink},
	{"highlight", Highlight},
	{"mark", Mark},
}

// Has reports whether every bit of want is set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// String lists the names of the set bits joined by commas.
// Undefined bits are appended as a hex remainder.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if rest := f &^ AllFlags; rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, ",")
}

// Names returns every flag name in bit order.
func Names() []string {
	names := make([]string, len(flagNames))
	for i, fn := range flagNames {
		names[i] = fn.name
	}
	return names
}

// Lookup returns the bit for a flag name (case-insensitive).
func Lookup(name string) (Flags, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, fn := range flagNames {
		if fn.name == key {
			return fn.flag, true
		}
	}
	return 0, false
}

// ParseNames combines named flags into a mask. Empty names are skipped.
func ParseNames(names []string) (Flags, error) {
	var f Flags
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		bit, ok := Lookup(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
		}
		f |= bit
	}
	return f, nil
}

// ParseMask parses a numeric mask in decimal, hex (0x) or octal (0o) form.
// Bits outside AllFlags are kept: engines ignore what they do not know.
func ParseMask(s string) (Flags, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMask, s)
	}
	return Flags(v), nil
}
