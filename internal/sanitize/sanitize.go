// Package sanitize scrubs engine output down to user-generated-content safe
// HTML. It wraps bluemonday so engines do not depend on it directly.
package sanitize

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// classPattern accepts the class lists produced by the highlighters.
var classPattern = regexp.MustCompile(`^[\w\s-]+$`)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Policy returns the shared policy: bluemonday's UGC policy plus <mark>,
// highlight classes on code markup, and heading ids for anchors.
// A policy is safe for concurrent use once built.
func Policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("mark")
		p.AllowAttrs("class").Matching(classPattern).OnElements("pre", "code", "span", "div")
		p.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		policy = p
	})
	return policy
}

// HTML returns a sanitized copy of rendered HTML.
func HTML(rendered []byte) []byte {
	return Policy().SanitizeBytes(rendered)
}
