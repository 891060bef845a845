package md2html_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	md2html "github.com/alnah/go-md2html"
)

func ExampleToHTML() {
	html, ok := md2html.ToHTML([]byte("hello"), 0)
	if !ok {
		log.Fatal("conversion failed")
	}
	fmt.Println(strings.TrimSpace(string(html)))
	// Output: <p>hello</p>
}

func ExampleToHTML_absent() {
	_, ok := md2html.ToHTML(nil, md2html.HeadingIDs)
	fmt.Println(ok)
	// Output: false
}

func ExampleParseFlags() {
	flags, err := md2html.ParseFlags([]string{"toc", "footnotes"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(flags)
	// Output: toc,footnotes
}

func ExampleConverter_Convert() {
	conv, err := md2html.NewConverter(
		md2html.WithStandalone(false),
		md2html.WithTOC(&md2html.TOC{Title: "Contents"}),
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := conv.Convert(context.Background(), md2html.Input{
		Markdown: "---\ntitle: Notes\n---\n## First\n\ntext\n",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Title)
	fmt.Println(strings.Contains(string(res.HTML), `<a href="#first">1. First</a>`))
	// Output:
	// Notes
	// true
}
