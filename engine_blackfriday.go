//go:build blackfriday

package md2html

import "github.com/alnah/go-md2html/internal/bfengine"

// EngineName identifies the markdown engine compiled into this build.
const EngineName = "blackfriday"

var (
	_ IntEngine[*bfengine.Document] = (*bfengine.Engine)(nil)

	defaultEngine = bfengine.New()
)

// ToHTML renders markdown to an HTML fragment. It reports false for nil
// input and for any engine failure.
func ToHTML(src []byte, flags Flags) ([]byte, bool) {
	return convertInt[*bfengine.Document](defaultEngine, src, flags)
}

// newRenderFunc returns a ToHTML equivalent bound to a highlight style.
func newRenderFunc(highlightStyle string) renderFunc {
	e := bfengine.New(bfengine.WithHighlightStyle(highlightStyle))
	return func(src []byte, flags Flags) ([]byte, bool) {
		return convertInt[*bfengine.Document](e, src, flags)
	}
}
