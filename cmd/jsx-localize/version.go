package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Build information, overridden at build time via -ldflags.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

func versionString() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

func newVersionCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show jsx-localize build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "jsx-localize %s\n", versionString())
			if full {
				fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(GitCommit))
				fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(BuildDate))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "include commit and build date")
	return cmd
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
