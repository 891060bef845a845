package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		data         DocumentData
		wantContains []string
		wantNot      []string
	}{
		{
			name: "defaults",
			body: "<p>hi</p>",
			wantContains: []string{
				"<!DOCTYPE html>\n<html>\n",
				`<meta charset="utf-8">`,
				"<title>Document</title>",
				"<body>\n<p>hi</p>\n</body>",
			},
			wantNot: []string{"lang=", `name="description"`},
		},
		{
			name: "title escaped",
			body: "",
			data: DocumentData{Title: "A <b> & C"},
			wantContains: []string{
				"<title>A &lt;b&gt; &amp; C</title>",
				"<body>\n</body>",
			},
		},
		{
			name: "metadata",
			body: "<p>x</p>\n",
			data: DocumentData{
				Title:       "T",
				Lang:        "fr",
				Description: `say "hi"`,
				Author:      "Ada",
				Keywords:    []string{"go", "md"},
			},
			wantContains: []string{
				`<html lang="fr">`,
				`<meta name="description" content="say &#34;hi&#34;">`,
				`<meta name="author" content="Ada">`,
				`<meta name="keywords" content="go, md">`,
			},
		},
		{
			name:         "xhtml void elements",
			body:         "<p>x</p>",
			data:         DocumentData{XHTML: true},
			wantContains: []string{`<meta charset="utf-8" />`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := WrapDocument(tt.body, tt.data)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("WrapDocument() = %q, want it to contain %q", got, want)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("WrapDocument() = %q, should not contain %q", got, not)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSplitFrontMatter - Metadata extraction
// ---------------------------------------------------------------------------

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		wantNil   bool
		wantTitle string
		wantBody  string
		wantRaw   map[string]any
	}{
		{
			name:     "no front matter",
			src:      "# Title\n\nbody\n",
			wantNil:  true,
			wantBody: "# Title\n\nbody\n",
		},
		{
			name:      "yaml",
			src:       "---\ntitle: Hello\nauthor: Ada\nkeywords: [a, b]\ncategory: notes\n---\n# Body\n",
			wantTitle: "Hello",
			wantBody:  "# Body\n",
			wantRaw:   map[string]any{"title": "Hello", "author": "Ada", "category": "notes"},
		},
		{
			name:      "toml",
			src:       "+++\ntitle = \"Hello\"\n+++\nbody\n",
			wantTitle: "Hello",
			wantBody:  "body\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, err := SplitFrontMatter([]byte(tt.src))
			if err != nil {
				t.Fatalf("SplitFrontMatter() unexpected error: %v", err)
			}
			if tt.wantNil {
				if fm != nil {
					t.Errorf("SplitFrontMatter() meta = %+v, want nil", fm)
				}
			} else {
				if fm == nil {
					t.Fatal("SplitFrontMatter() meta = nil")
				}
				if fm.Title != tt.wantTitle {
					t.Errorf("Title = %q, want %q", fm.Title, tt.wantTitle)
				}
				for k, v := range tt.wantRaw {
					if fm.Raw[k] != v {
						t.Errorf("Raw[%q] = %v, want %v", k, fm.Raw[k], v)
					}
				}
			}
			if strings.TrimSpace(string(body)) != strings.TrimSpace(tt.wantBody) {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestSplitFrontMatter_Keywords(t *testing.T) {
	t.Parallel()

	fm, _, err := SplitFrontMatter([]byte("---\nkeywords:\n  - go\n  - html\nlang: en\n---\ntext\n"))
	if err != nil {
		t.Fatalf("SplitFrontMatter() unexpected error: %v", err)
	}
	if len(fm.Keywords) != 2 || fm.Keywords[0] != "go" || fm.Keywords[1] != "html" {
		t.Errorf("Keywords = %v, want [go html]", fm.Keywords)
	}
	if fm.Lang != "en" {
		t.Errorf("Lang = %q, want %q", fm.Lang, "en")
	}
}

func TestSplitFrontMatter_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := SplitFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("SplitFrontMatter() error = %v, want ErrFrontMatter", err)
	}
}
