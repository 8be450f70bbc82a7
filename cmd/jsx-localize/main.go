package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRootCmd builds the command tree. Commands are built per call so tests
// get fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsx-localize",
		Short: "Rewrite inline i18n annotations in JSX into $localize calls",
		Long: `jsx-localize finds elements marked with an i18n attribute, <i18n> wrapper
tags and i18n-attr-* attribute markers in .jsx/.tsx sources and rewrites
them into $localize tagged templates.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cmd.Flags().GetString("color")
			if err != nil {
				return err
			}
			return setupColor(mode, cmd.ErrOrStderr())
		},
	}
	rootCmd.Version = versionString()

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every file at debug level")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to jsx-localize.toml (skips discovery)")

	rootCmd.AddCommand(newTransformCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main builds the command tree and executes it, exiting with status 1 on error.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func setupColor(mode string, out io.Writer) error {
	switch strings.ToLower(mode) {
	case "auto":
		f, ok := out.(*os.File)
		color.NoColor = !ok || !isTerminal(f) || os.Getenv("NO_COLOR") != ""
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
	return nil
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newLogger writes human-readable log lines to out. Debug lines appear only
// with --verbose.
func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    color.NoColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

var errorLabel = color.New(color.FgRed, color.Bold)

func printError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %v\n", errorLabel.Sprint("error:"), err)
}
