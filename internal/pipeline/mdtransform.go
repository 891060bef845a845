package pipeline

import (
	"bytes"
	"regexp"
)

// Mark placeholders use Unicode Private Use Area characters.
// They pass through the engine unchanged, even with raw HTML disabled,
// and are turned into <mark> tags once the engine has rendered.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==([^=\n]+?)==`)

	markStart       = []byte(MarkStartPlaceholder)
	markEnd         = []byte(MarkEndPlaceholder)
	markReplacement = []byte(MarkStartPlaceholder + "$1" + MarkEndPlaceholder)
)

// NormalizeSource prepares raw markdown for an engine: line endings become
// \n and, with mark set, ==text== outside code is replaced by placeholders.
// With mark set, placeholder runes already in the source are dropped so
// they cannot turn into tags.
// The input slice is never modified. Empty input is returned as is.
func NormalizeSource(src []byte, mark bool) []byte {
	if len(src) == 0 {
		return src
	}

	out := crlfOrCR.ReplaceAll(src, []byte("\n"))
	if mark {
		out = markOutsideCode(stripPlaceholders(out))
	}
	return out
}

// ConvertMarkPlaceholders rewrites placeholder pairs into <mark> tags.
// rendered is returned as is when it holds no placeholder.
func ConvertMarkPlaceholders(rendered []byte) []byte {
	if !bytes.Contains(rendered, markStart) {
		return rendered
	}
	out := bytes.ReplaceAll(rendered, markStart, []byte("<mark>"))
	return bytes.ReplaceAll(out, markEnd, []byte("</mark>"))
}

func stripPlaceholders(src []byte) []byte {
	if !bytes.Contains(src, markStart) && !bytes.Contains(src, markEnd) {
		return src
	}
	out := bytes.ReplaceAll(src, markStart, nil)
	return bytes.ReplaceAll(out, markEnd, nil)
}

// markOutsideCode applies the ==text== rewrite line by line, leaving fenced
// blocks, indented code blocks and backtick code spans untouched.
func markOutsideCode(src []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(src))

	var fence []byte
	blank, indented := true, false
	for len(src) > 0 {
		line := src
		if i := bytes.IndexByte(src, '\n'); i >= 0 {
			line = src[:i+1]
		}
		src = src[len(line):]
		body := bytes.TrimRight(line, "\n")

		switch {
		case fence != nil:
			if closesFence(body, fence) {
				fence = nil
			}
			out.Write(line)
		case openingFence(body) != nil:
			fence = openingFence(body)
			out.Write(line)
		case isIndentedCode(body) && (blank || indented):
			indented = true
			out.Write(line)
		default:
			indented = false
			markLine(&out, line)
		}
		blank = len(bytes.TrimSpace(body)) == 0
	}
	return out.Bytes()
}

// openingFence returns the ``` or ~~~ run opening a fenced block, or nil.
func openingFence(line []byte) []byte {
	line = trimFenceIndent(line)
	if len(line) < 3 || (line[0] != '`' && line[0] != '~') {
		return nil
	}
	n := runLen(line, line[0])
	if n < 3 {
		return nil
	}
	if line[0] == '`' && bytes.IndexByte(line[n:], '`') >= 0 {
		return nil
	}
	return line[:n]
}

func closesFence(line, fence []byte) bool {
	line = trimFenceIndent(line)
	if len(line) == 0 || line[0] != fence[0] {
		return false
	}
	n := runLen(line, fence[0])
	return n >= len(fence) && len(bytes.TrimSpace(line[n:])) == 0
}

// trimFenceIndent drops up to three leading spaces.
func trimFenceIndent(line []byte) []byte {
	for i := 0; i < 3 && len(line) > 0 && line[0] == ' '; i++ {
		line = line[1:]
	}
	return line
}

func isIndentedCode(line []byte) bool {
	if len(bytes.TrimSpace(line)) == 0 {
		return false
	}
	return bytes.HasPrefix(line, []byte("    ")) || line[0] == '\t'
}

// markLine rewrites ==text== in line except inside backtick code spans.
// A backtick run without a closing run of the same length is plain text.
func markLine(out *bytes.Buffer, line []byte) {
	plain := 0
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		n := runLen(line[i:], '`')
		end := closingRun(line[i+n:], n)
		if end < 0 {
			i += n
			continue
		}
		out.Write(highlightPattern.ReplaceAll(line[plain:i], markReplacement))
		spanEnd := i + n + end + n
		out.Write(line[i:spanEnd])
		i, plain = spanEnd, spanEnd
	}
	out.Write(highlightPattern.ReplaceAll(line[plain:], markReplacement))
}

// closingRun returns the offset of the first backtick run in s exactly n
// long, or -1.
func closingRun(s []byte, n int) int {
	for i := 0; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		m := runLen(s[i:], '`')
		if m == n {
			return i
		}
		i += m
	}
	return -1
}

func runLen(s []byte, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}
