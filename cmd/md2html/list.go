package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/mkd"
)

// flagDescriptions documents each rendering flag for the flags command.
var flagDescriptions = map[string]string{
	"nolinks":         "render links as plain text",
	"noimages":        "render images as their alt text",
	"nopants":         "disable smart quotes and dashes",
	"nohtml":          "drop raw HTML",
	"strict":          "plain CommonMark, no extensions",
	"notables":        "disable tables",
	"nostrikethrough": "disable ~~strikethrough~~",
	"notasklists":     "disable [ ] task lists",
	"autolink":        "link bare URLs",
	"toc":             "add ids to headings",
	"footnotes":       "enable footnotes",
	"dlists":          "enable definition lists",
	"hardwrap":        "treat newlines as <br>",
	"xhtml":           "self-close void elements",
	"safelink":        "sanitize output, drop unsafe URLs",
	"highlight":       "syntax-highlight fenced code",
	"mark":            "render ==text== as <mark>",
}

// printFlags lists every flag name with its bit value and description.
func printFlags(w io.Writer) {
	fmt.Fprintln(w, "Markdown flags (engine: "+md2html.EngineName+"):")
	fmt.Fprintln(w)
	for _, name := range md2html.FlagNames() {
		bit, _ := mkd.Lookup(name)
		fmt.Fprintf(w, "  %-16s 0x%05x  %s\n", name, uint32(bit), flagDescriptions[name])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Combine names with --flags a,b or bits with --mask.")
}

// runStylesCmd lists page stylesheets and highlight styles.
func runStylesCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printStylesUsage(env.Stderr) }
	assetPath := fs.String("asset-path", "", "custom asset directory")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	names, err := md2html.StyleNames(*assetPath)
	if err != nil {
		fmt.Fprintln(env.Stderr, describeError(err))
		return exitCodeFor(err)
	}

	fmt.Fprintln(env.Stdout, "Styles (--style):")
	for _, name := range names {
		fmt.Fprintf(env.Stdout, "  %s\n", name)
	}
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Highlight styles (--highlight-style, default "+highlight.DefaultStyle+"):")
	for _, name := range highlight.StyleNames() {
		fmt.Fprintf(env.Stdout, "  %s\n", name)
	}
	return ExitSuccess
}
