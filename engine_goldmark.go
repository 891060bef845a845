//go:build !blackfriday

package md2html

import "github.com/alnah/go-md2html/internal/gmengine"

// EngineName identifies the markdown engine compiled into this build.
const EngineName = "goldmark"

var (
	_ BitmapEngine[*gmengine.Document, *gmengine.FlagBlob] = (*gmengine.Engine)(nil)

	defaultEngine = gmengine.New()
)

// ToHTML renders markdown to an HTML fragment. It reports false for nil
// input and for any engine failure.
func ToHTML(src []byte, flags Flags) ([]byte, bool) {
	return convertBitmap[*gmengine.Document, *gmengine.FlagBlob](defaultEngine, src, flags)
}

// newRenderFunc returns a ToHTML equivalent bound to a highlight style.
func newRenderFunc(highlightStyle string) renderFunc {
	e := gmengine.New(gmengine.WithHighlightStyle(highlightStyle))
	return func(src []byte, flags Flags) ([]byte, bool) {
		return convertBitmap[*gmengine.Document, *gmengine.FlagBlob](e, src, flags)
	}
}
