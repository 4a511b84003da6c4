// art3a - 3a animated ASCII art CLI tool
//
// Usage:
//
//	art3a fmt [--strip-comments] [--editor=NAME] [-w] [file]  Re-emit a document in canonical form
//	art3a check [--expect=HASH] [file]                       Validate and print the fingerprint
//	art3a info [--json] [--get=PATH] [file]                  Print document metadata
//	art3a palette [file]                                     List color names and pairs
//	art3a show [--frame=N] [file]                            Print one frame
//	art3a import-ansi [file]                                 Convert colored terminal output
//	art3a version                                            Print version info
//
// Global options: -v (verbose), --config=PATH, --max-line=N.
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Neumenon/art3a/art3a"
	"github.com/Neumenon/art3a/stream"
)

const version = "0.3.0"

// options collects the flags of every command.
type options struct {
	verbose       bool
	configPath    string
	maxLine       int
	stripComments bool
	editor        string
	write         bool
	expect        string
	json          bool
	get           string
	frame         int
	file          string
}

var verbose bool

// logv logs only in verbose mode.
func logv(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("art3a: ")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	switch cmd {
	case "version", "--version":
		fmt.Printf("art3a %s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	opts, err := parseArgs(os.Args[2:])
	if err != nil {
		fatal("%v", err)
	}
	path, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		fatal("%v", err)
	}
	verbose = opts.verbose || cfg.Verbose
	if cfg.StripComments {
		opts.stripComments = true
	}
	if opts.editor == "" {
		opts.editor = cfg.Editor
	}
	logv("config %q", path)

	switch cmd {
	case "fmt":
		cmdFmt(opts)
	case "check":
		cmdCheck(opts)
	case "info":
		cmdInfo(opts)
	case "palette":
		cmdPalette(opts)
	case "show":
		cmdShow(opts)
	case "import-ansi":
		cmdImportANSI(opts)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `art3a - 3a animated ASCII art tool

Usage:
  art3a fmt [options] [file]        Re-emit a document in canonical form
  art3a check [--expect=HASH] [file] Validate and print the fingerprint
  art3a info [--json] [--get=PATH]  Print document metadata
  art3a palette [file]              List color names and pairs
  art3a show [--frame=N] [file]     Print one frame
  art3a import-ansi [file]          Convert colored terminal output to 3a
  art3a version                     Print version info

Options:
  --strip-comments    Drop header comments (fmt)
  --editor=NAME       Set the editor key when absent (fmt)
  -w                  Write the result back to the file (fmt)
  --expect=HASH       Fail unless the fingerprint matches (check)
  --json              Print metadata as JSON (info)
  --get=PATH          Print one metadata field, e.g. palette.0.pair (info)
  --frame=N           Frame to print (show, default 0)
  --config=PATH       Config file (default $XDG_CONFIG_HOME/art3a/config.ini)
  --max-line=N        Longest accepted input line in bytes (0: no limit)
  -v                  Verbose logging

If no file is given, reads from stdin.

Examples:
  art3a fmt --strip-comments cat.3a > cat.clean.3a
  art3a info --get=frames cat.3a
  ls --color=always | art3a import-ansi > ls.3a
`)
}

// parseArgs reads flags in the "--name=value" form and one file argument.
func parseArgs(args []string) (*options, error) {
	opts := &options{maxLine: stream.MaxLineLength}
	for _, arg := range args {
		switch {
		case arg == "-v" || arg == "--verbose":
			opts.verbose = true
		case arg == "-w":
			opts.write = true
		case arg == "--strip-comments":
			opts.stripComments = true
		case arg == "--json":
			opts.json = true
		case strings.HasPrefix(arg, "--editor="):
			opts.editor = strings.TrimPrefix(arg, "--editor=")
		case strings.HasPrefix(arg, "--expect="):
			opts.expect = strings.TrimPrefix(arg, "--expect=")
		case strings.HasPrefix(arg, "--get="):
			opts.get = strings.TrimPrefix(arg, "--get=")
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "--frame="):
			n, err := parseIntArg(arg, "--frame=")
			if err != nil {
				return nil, err
			}
			opts.frame = n
		case strings.HasPrefix(arg, "--max-line="):
			n, err := parseIntArg(arg, "--max-line=")
			if err != nil {
				return nil, err
			}
			opts.maxLine = n
		case arg == "-":
			opts.file = ""
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown option: %s", arg)
		default:
			opts.file = arg
		}
	}
	if opts.write && opts.file == "" {
		return nil, fmt.Errorf("-w needs a file argument")
	}
	return opts, nil
}

// parseIntArg extracts a non-negative integer from a flag like "--frame=2".
func parseIntArg(arg, prefix string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, prefix))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid value in %s", arg)
	}
	return n, nil
}

// input opens the file argument or stdin.
func input(opts *options) io.ReadCloser {
	if opts.file == "" {
		return io.NopCloser(os.Stdin)
	}
	f, err := os.Open(opts.file)
	if err != nil {
		fatal("open file: %v", err)
	}
	return f
}

// readArt parses the input document.
func readArt(opts *options) *art3a.Art {
	r := input(opts)
	defer r.Close()
	a, err := art3a.Read(r, art3a.WithMaxLineLength(opts.maxLine))
	if err != nil {
		fatal("parse: %v", err)
	}
	logv("read %d frames of %dx%d", a.Frames(), a.Width(), a.Height())
	return a
}

// cmdFmt: document -> canonical document
func cmdFmt(opts *options) {
	a := readArt(opts)
	if opts.editor != "" {
		if _, ok := a.Editor(); !ok {
			a.SetEditor(opts.editor)
		}
	}
	var fopts []art3a.FormatOption
	if opts.stripComments {
		fopts = append(fopts, art3a.WithoutComments())
	}
	if opts.write {
		if err := a.WriteFile(opts.file, fopts...); err != nil {
			fatal("write %s: %v", opts.file, err)
		}
		logv("wrote %s", opts.file)
		return
	}
	if _, err := a.WriteTo(os.Stdout, fopts...); err != nil {
		fatal("write: %v", err)
	}
}

// cmdCheck: validate, print the fingerprint, and compare it when asked.
func cmdCheck(opts *options) {
	a := readArt(opts)
	res := a.Validate()
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s [%s]\n", w.Error(), w.Code)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "error: %s [%s]\n", e.Error(), e.Code)
	}
	sum := a.Fingerprint()
	fmt.Println(stream.HashToHex(sum))
	if opts.expect != "" {
		want, ok := stream.HexToHash(opts.expect)
		if !ok {
			fatal("invalid hash %q", opts.expect)
		}
		if !stream.VerifyHash(sum, want) {
			fatal("fingerprint mismatch: got %s", stream.HashToHex(sum))
		}
	}
	if !res.Valid {
		os.Exit(1)
	}
}

// cmdInfo: document -> metadata
func cmdInfo(opts *options) {
	a := readArt(opts)
	doc, err := infoJSON(a)
	if err != nil {
		fatal("build info: %v", err)
	}
	switch {
	case opts.get != "":
		v, ok := lookupInfo(doc, opts.get)
		if !ok {
			fatal("no field %q", opts.get)
		}
		fmt.Println(v)
	case opts.json:
		fmt.Println(string(doc))
	default:
		writeInfo(os.Stdout, doc)
	}
}

// cmdPalette: list colors, with swatches on a terminal
func cmdPalette(opts *options) {
	a := readArt(opts)
	writePalette(os.Stdout, a, isTerminal(os.Stdout))
}

// cmdShow: print one frame, in color on a terminal
func cmdShow(opts *options) {
	a := readArt(opts)
	if err := writeFrame(os.Stdout, a, opts.frame, isTerminal(os.Stdout) && a.HasColors()); err != nil {
		fatal("show: %v", err)
	}
}

// cmdImportANSI: colored terminal output -> document
func cmdImportANSI(opts *options) {
	r := input(opts)
	defer r.Close()
	a, err := art3a.ImportANSI(r, art3a.WithMaxLineLength(opts.maxLine))
	if err != nil {
		fatal("import: %v", err)
	}
	logv("imported %dx%d with %d colors", a.Width(), a.Height(), a.Header().Palette.Len())
	if _, err := a.WriteTo(os.Stdout); err != nil {
		fatal("write: %v", err)
	}
}

func fatal(format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(1)
}
