package pipeline

import (
	"context"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, after <body>, or at the
// start of the content, whichever is found first.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>\n" + sanitizeCSS(cssContent) + "\n</style>\n"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}
	if pos := afterBodyTag(htmlContent, lowerHTML); pos != -1 {
		return htmlContent[:pos] + styleBlock + htmlContent[pos:]
	}
	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> tag.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// afterBodyTag returns the index just past the opening <body> tag, or -1.
func afterBodyTag(htmlContent, lowerHTML string) int {
	idx := strings.Index(lowerHTML, "<body")
	if idx == -1 {
		return -1
	}
	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return -1
	}
	return idx + closeIdx + 1
}

// TOCData holds TOC configuration for injection.
type TOCData struct {
	Title    string
	MinDepth int // shallowest heading level listed
	MaxDepth int // deepest heading level listed
}

// TOCInjector defines the contract for TOC injection into HTML.
type TOCInjector interface {
	InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error)
}

type headingInfo struct {
	Level int
	ID    string
	Text  string
}

// headingPattern matches h1-h6 with an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML.
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// firstH1Pattern matches the first h1, with or without an id.
var firstH1Pattern = regexp.MustCompile(`(?is)<h1(?:\s[^>]*)?>(.*?)</h1>`)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes tags, decodes entities and trims whitespace.
// Entities are decoded so the text is not double-encoded when escaped again.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// FirstHeading returns the text of the first h1 in htmlContent, or "".
func FirstHeading(htmlContent string) string {
	m := firstH1Pattern.FindStringSubmatch(htmlContent)
	if m == nil {
		return ""
	}
	return stripHTMLTags(m[1])
}

// extractHeadings returns headings with an id between minDepth and maxDepth.
func extractHeadings(htmlContent string, minDepth, maxDepth int) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []headingInfo
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level < minDepth || level > maxDepth {
			continue
		}
		headings = append(headings, headingInfo{Level: level, ID: m[2], Text: stripHTMLTags(m[3])})
	}
	return headings
}

// numberingState tracks hierarchical numbering for TOC entries. The first
// heading seen becomes depth 1 and skipped levels collapse to one step.
type numberingState struct {
	counters     [6]int
	minLevelSeen int
	lastDepth    int
}

// next returns the number string ("1.2.") and the depth for a heading level.
func (n *numberingState) next(level int) (string, int) {
	if n.minLevelSeen == 0 {
		n.minLevelSeen = level
	}

	depth := level - n.minLevelSeen + 1
	if depth < 1 {
		depth = 1
	}
	if n.lastDepth > 0 && depth > n.lastDepth+1 {
		depth = n.lastDepth + 1
	}

	for i := depth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[depth-1]++
	n.lastDepth = depth

	parts := make([]string, depth)
	for i := 0; i < depth; i++ {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, ".") + ".", depth
}

// generateTOC renders a numbered table of contents. Nesting is expressed
// with toc-level-N classes so stylesheets control indentation.
func generateTOC(headings []headingInfo, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("<nav class=\"toc\">\n")
	if title != "" {
		buf.WriteString(`<h2 class="toc-title">`)
		buf.WriteString(html.EscapeString(title))
		buf.WriteString("</h2>\n")
	}
	buf.WriteString("<div class=\"toc-list\">\n")

	var numbering numberingState
	for _, h := range headings {
		num, depth := numbering.next(h.Level)
		buf.WriteString(`<div class="toc-item toc-level-`)
		buf.WriteString(strconv.Itoa(depth))
		buf.WriteString(`"><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(num)
		buf.WriteString(" ")
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString("</a></div>\n")
	}

	buf.WriteString("</div>\n</nav>\n")
	return buf.String()
}

// TOCInjection implements TOCInjector.
type TOCInjection struct{}

// NewTOCInjection creates a new TOC injector.
func NewTOCInjection() *TOCInjection {
	return &TOCInjection{}
}

// InjectTOC inserts a table of contents built from headings that carry an
// id. It goes right after <body>, or at the start of a fragment. A nil data
// or a document without matching headings is returned unchanged.
func (t *TOCInjection) InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tocHTML := generateTOC(extractHeadings(htmlContent, data.MinDepth, data.MaxDepth), data.Title)
	if tocHTML == "" {
		return htmlContent, nil
	}

	if pos := afterBodyTag(htmlContent, strings.ToLower(htmlContent)); pos != -1 {
		return htmlContent[:pos] + "\n" + tocHTML + htmlContent[pos:], nil
	}
	return tocHTML + htmlContent, nil
}
