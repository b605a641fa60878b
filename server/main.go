//go:build !js
// +build !js

// Command valentine serves the greeting card and checks card
// configuration files.
//
// Usage:
//
//	valentine serve [--port 8080] [--static .]  - Serve the page and its script bundle
//	valentine validate <file> [--strict]        - Report what the card would repair
//	valentine show <file>                       - Print the repaired configuration
//	valentine version                           - Print version information
//
// Configuration files are YAML (.yaml, .yml) or TOML (.toml).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "valentine",
		Short: "Greeting card server and configuration checker",
		Long: `valentine serves the interactive greeting card page and checks card
configuration files before they are compiled into the page.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newShowCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "version: %s\ncommit: %s\n", version, commit)
			},
		},
	)
	return root
}
