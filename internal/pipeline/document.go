package pipeline

import (
	"html"
	"strings"
)

// DefaultTitle is used when a document provides no title.
const DefaultTitle = "Document"

// DocumentData describes the <head> of a standalone document.
type DocumentData struct {
	Title       string
	Lang        string
	Description string
	Author      string
	Keywords    []string
	XHTML       bool
}

// WrapDocument wraps an HTML fragment in a complete HTML5 document.
// Attribute and text values are escaped; the body is inserted as is.
func WrapDocument(body string, data DocumentData) string {
	title := data.Title
	if title == "" {
		title = DefaultTitle
	}
	closer := ">"
	if data.XHTML {
		closer = " />"
	}

	var sb strings.Builder
	sb.Grow(len(body) + 256)

	sb.WriteString("<!DOCTYPE html>\n<html")
	if data.Lang != "" {
		sb.WriteString(` lang="`)
		sb.WriteString(html.EscapeString(data.Lang))
		sb.WriteString(`"`)
	}
	sb.WriteString(">\n<head>\n")
	sb.WriteString(`<meta charset="utf-8"` + closer + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"` + closer + "\n")
	writeMeta(&sb, "description", data.Description, closer)
	writeMeta(&sb, "author", data.Author, closer)
	writeMeta(&sb, "keywords", strings.Join(data.Keywords, ", "), closer)
	sb.WriteString("<title>")
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</title>\n</head>\n<body>\n")
	sb.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func writeMeta(sb *strings.Builder, name, content, closer string) {
	if content == "" {
		return
	}
	sb.WriteString(`<meta name="`)
	sb.WriteString(name)
	sb.WriteString(`" content="`)
	sb.WriteString(html.EscapeString(content))
	sb.WriteString(`"` + closer + "\n")
}
