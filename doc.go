// Package md2html converts GitHub-flavored markdown to HTML.
//
// # Quick Start
//
// ToHTML renders a markdown buffer with a set of option bits:
//
//	html, ok := md2html.ToHTML([]byte("# Hello\n\nWorld"), md2html.HeadingIDs|md2html.Highlight)
//	if !ok {
//	    log.Fatal("conversion failed")
//	}
//
// A nil buffer, input the engine rejects (invalid UTF-8, more than 32MB)
// and any engine failure all report ok == false. The returned
// slice is owned by the caller.
//
// # Engines
//
// Rendering is delegated to one of two engines chosen at build time:
//
//   - goldmark (default), whose options travel in an allocated flag blob
//   - blackfriday v2 (go build -tags blackfriday), whose options are a plain int
//
// EngineName reports which one was compiled in. Both honor the same Flags.
//
// # Documents
//
// Converter builds complete HTML5 documents on top of ToHTML:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithFlags(md2html.Highlight|md2html.Footnotes),
//	    md2html.WithStyle("minimal"),
//	    md2html.WithTOC(&md2html.TOC{Title: "Contents"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown:  content,
//	    SourceDir: "docs",   // relative links are rebased
//	    OutputDir: "public", // from here to here
//	})
//
// A conversion splits YAML/TOML front matter, renders the body, rebases
// relative image and link targets, injects a table of contents, then wraps
// the fragment in a document with the selected stylesheet.
//
// # Custom Styles
//
// WithAssetPath points at a directory whose styles/{name}.css files take
// precedence over the embedded "default" and "minimal" styles.
package md2html
