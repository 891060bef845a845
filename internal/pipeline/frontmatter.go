package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a front matter block could not be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds the document metadata recognized by the converter.
// Every decoded key, known or not, is also kept in Raw.
type FrontMatter struct {
	Title       string
	Description string
	Author      string
	Lang        string
	Keywords    []string
	Raw         map[string]any
}

type frontMatterEnvelope struct {
	Title       string         `yaml:"title" toml:"title" json:"title"`
	Description string         `yaml:"description" toml:"description" json:"description"`
	Author      string         `yaml:"author" toml:"author" json:"author"`
	Lang        string         `yaml:"lang" toml:"lang" json:"lang"`
	Keywords    []string       `yaml:"keywords" toml:"keywords" json:"keywords"`
	Custom      map[string]any `yaml:",inline" toml:"-" json:"-"`
}

// SplitFrontMatter separates a leading YAML (---), TOML (+++) or JSON
// front matter block from the markdown body. Without a block it returns a
// nil FrontMatter and src unchanged.
func SplitFrontMatter(src []byte) (*FrontMatter, []byte, error) {
	if len(src) == 0 {
		return nil, src, nil
	}

	var env frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(src), &env)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	if len(body) == len(src) {
		return nil, src, nil
	}

	return env.toFrontMatter(), body, nil
}

func (env frontMatterEnvelope) toFrontMatter() *FrontMatter {
	raw := make(map[string]any, len(env.Custom)+5)
	for k, v := range env.Custom {
		raw[k] = v
	}
	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Description != "" {
		raw["description"] = env.Description
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if env.Lang != "" {
		raw["lang"] = env.Lang
	}
	if len(env.Keywords) > 0 {
		raw["keywords"] = append([]string(nil), env.Keywords...)
	}

	return &FrontMatter{
		Title:       env.Title,
		Description: env.Description,
		Author:      env.Author,
		Lang:        env.Lang,
		Keywords:    append([]string(nil), env.Keywords...),
		Raw:         raw,
	}
}
