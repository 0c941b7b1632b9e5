// quill2gdocs-api exports rich-editor content to Google Docs. It reads
// one JSON request from stdin and writes one JSON result to stdout; the
// single positional "auth" argument runs the interactive OAuth flow
// instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Skuskusku13/app-google-auth/config"
	"github.com/Skuskusku13/app-google-auth/debug"
)

func main() {
	flags := flag.NewFlagSet("quill2gdocs-api", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	debugFlag := flags.Bool("debug", false, "Enable debug logging (stderr)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) > 0 && args[0] != "auth" {
		usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		if len(args) > 0 && args[0] == "auth" {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		_ = writeErrorResult(os.Stdout, errCodeConfigError, "failed to load config", err)
		os.Exit(1)
	}

	debug.Enabled = *debugFlag || cfg.Debug

	if len(args) > 0 && args[0] == "auth" {
		if err := handleAuth(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Auth failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	handleOperation(cfg)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  quill2gdocs-api [--debug] auth    # perform OAuth flow")
	fmt.Fprintln(os.Stderr, "  quill2gdocs-api [--debug]         # read a JSON request from stdin")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Config:")
	fmt.Fprintf(os.Stderr, "  %s\n", config.ConfigPath())
}
