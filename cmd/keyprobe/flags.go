// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --json, --table, --kitty, --platform, --config, --verbose, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	json     bool
	table    bool
	kitty    bool
	platform string
	config   string
	verbose  bool
	version  bool
}

// parseFlags parses args (without the program name). Usage and errors are
// written to stderr.
func parseFlags(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs

	fs := flag.NewFlagSet("keyprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&a.json, "json", false, "Print one JSON record per key event instead of the viewer")
	fs.BoolVar(&a.table, "table", false, "Print the escape-code key table and exit")
	fs.BoolVar(&a.kitty, "kitty", false, "Terminal speaks the kitty keyboard protocol")
	fs.StringVar(&a.platform, "platform", "", "Override the host platform (e.g. darwin)")
	fs.StringVar(&a.config, "config", "", "Read settings from this file only")
	fs.BoolVar(&a.verbose, "verbose", false, "Log at debug level")
	fs.BoolVar(&a.version, "version", false, "Show version and exit")

	if err := fs.Parse(args); err != nil {
		return a, err
	}
	return a, nil
}
