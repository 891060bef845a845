package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML")
	fmt.Fprintln(w, "  flags      List markdown rendering flags")
	fmt.Fprintln(w, "  styles     List stylesheets and highlight styles")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory (stdin: default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>           Per-document timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --flags <a,b>           Rendering flags (see 'md2html flags')")
	fmt.Fprintln(w, "      --mask <n>              Numeric flag mask, OR-ed with --flags")
	fmt.Fprintln(w, "      --no-front-matter       Render front matter as markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --style <s>             CSS style name, .css file or inline CSS")
	fmt.Fprintln(w, "      --no-style              Disable CSS styling")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style for code blocks")
	fmt.Fprintln(w, "      --fragment              Emit an HTML fragment, no <head> or CSS")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with styles/{name}.css overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                   Inject a table of contents")
	fmt.Fprintln(w, "      --toc-title <s>         TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>     Min heading depth (1-6, default 2)")
	fmt.Fprintln(w, "      --toc-depth <n>         Max heading depth (1-6, default 3)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_STYLE, MD2HTML_FLAGS, MD2HTML_TIMEOUT,")
	fmt.Fprintln(w, "  MD2HTML_WORKERS, MD2HTML_INPUT_DIR, MD2HTML_OUTPUT_DIR")
	fmt.Fprintln(w, "  Priority: flags > environment > config file > defaults")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html convert README.md")
	fmt.Fprintln(w, "  md2html convert docs/ -o site/ --toc --flags highlight,footnotes")
	fmt.Fprintln(w, "  cat notes.md | md2html convert - --fragment > notes.html")
}

// printStylesUsage prints usage for the styles command.
func printStylesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html styles [--asset-path <dir>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List page stylesheets (embedded and from --asset-path)")
	fmt.Fprintln(w, "and the chroma styles accepted by --highlight-style.")
}

// printFlagsUsage prints usage for the flags command.
func printFlagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html flags")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List markdown rendering flags with their bit values.")
	fmt.Fprintln(w, "Names are accepted by --flags and markdown.flags; values by --mask.")
}

// runHelp prints help for the named command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	topic := args[0]
	if !isCommand(topic) {
		fmt.Fprintf(env.Stderr, "unknown help topic: %s\n", topic)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch topic {
	case "convert":
		printConvertUsage(env.Stdout)
	case "flags":
		printFlagsUsage(env.Stdout)
	case "styles":
		printStylesUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show the version and the markdown engine compiled in.")
	default:
		printUsage(env.Stdout)
	}
	return ExitSuccess
}
