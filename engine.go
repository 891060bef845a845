package md2html

import "bytes"

// BitmapEngine is an engine whose options live in an allocated flag blob B
// that must be freed after use. D is its compilation handle.
type BitmapEngine[D, B any] interface {
	NewFlags() B
	SetFlags(blob B, flags Flags)
	FreeFlags(blob B)
	Parse(src []byte, blob B) (D, bool)
	Compile(doc D, blob B)
	Render(doc D) ([]byte, bool)
	Cleanup(doc D)
}

// IntEngine is an engine whose options are passed by value as an int.
type IntEngine[D any] interface {
	Parse(src []byte, flags int) (D, bool)
	Compile(doc D, flags int)
	Render(doc D) ([]byte, bool)
	Cleanup(doc D)
}

// convertBitmap runs the flag-blob sequence. The blob is freed exactly once
// and a parsed handle is cleaned up exactly once, on every path including
// a panic inside the engine, which is reported as a failure.
func convertBitmap[D, B any](e BitmapEngine[D, B], src []byte, flags Flags) (out []byte, ok bool) {
	if src == nil {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			out, ok = nil, false
		}
	}()

	blob := e.NewFlags()
	defer e.FreeFlags(blob)
	e.SetFlags(blob, flags)

	doc, parsed := e.Parse(src, blob)
	if !parsed {
		return nil, false
	}
	defer e.Cleanup(doc)

	e.Compile(doc, blob)
	return copyOut(e.Render(doc))
}

// convertInt runs the plain-integer sequence with the same guarantees.
func convertInt[D any](e IntEngine[D], src []byte, flags Flags) (out []byte, ok bool) {
	if src == nil {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			out, ok = nil, false
		}
	}()

	doc, parsed := e.Parse(src, int(flags))
	if !parsed {
		return nil, false
	}
	defer e.Cleanup(doc)

	e.Compile(doc, int(flags))
	return copyOut(e.Render(doc))
}

// copyOut detaches rendered bytes from engine memory, which is reused once
// the handle is cleaned up.
func copyOut(html []byte, ok bool) ([]byte, bool) {
	if !ok {
		return nil, false
	}
	out := bytes.Clone(html)
	if out == nil {
		out = []byte{}
	}
	return out, true
}
