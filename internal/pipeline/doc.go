// Package pipeline implements the stages around markdown rendering.
//
// Before an engine runs:
//   - front matter is split from the body (YAML, TOML or JSON)
//   - line endings are normalized and ==mark== spans become placeholders
//
// After an engine runs:
//   - mark placeholders become <mark> elements
//   - relative image and link targets are rebased to the output directory
//   - a numbered table of contents is injected
//   - the fragment is wrapped in an HTML5 document and CSS is injected
//
// Rendering itself lives in the engine packages; the root md2html package
// chains these stages together.
package pipeline
