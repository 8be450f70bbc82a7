package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsx-localize/packages/localize/config"
	"jsx-localize/packages/localize/driver"
)

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [flags] <path> [path...]",
		Short: "Rewrite i18n annotations in JSX sources",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTransform,
	}
	cmd.Flags().Bool("write", false, "rewrite changed files in place")
	cmd.Flags().Bool("check", false, "fail if any file would be rewritten")
	cmd.Flags().Bool("stdout", false, "print transformed code to stdout")
	cmd.Flags().IntP("jobs", "j", 0, "files transformed concurrently (0 uses every CPU)")
	return cmd
}

func runTransform(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	if jobs < 0 {
		return fmt.Errorf("transform: --jobs must not be negative")
	}

	mode := driver.ModeReport
	switch {
	case write && check, write && toStdout, check && toStdout:
		return fmt.Errorf("transform: --write, --check and --stdout are mutually exclusive")
	case write:
		mode = driver.ModeWrite
	case check:
		mode = driver.ModeCheck
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath, args)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), verbose)
	if cfg.Path != "" {
		log.Debug().Str("config", cfg.Path).Msg("loaded configuration")
	}

	results, runErr := driver.Run(cmd.Context(), args, driver.Options{
		Config: cfg,
		Mode:   mode,
		Jobs:   jobs,
		Logger: log,
	})
	if runErr != nil && !errors.Is(runErr, driver.ErrWouldChange) {
		return runErr
	}

	out := cmd.OutOrStdout()
	if toStdout {
		renderStdout(out, results)
	} else if !quiet {
		renderReport(out, results, mode)
	}

	summary := driver.Summarize(results)
	if summary.Failed > 0 {
		return fmt.Errorf("transform: %d of %d files failed", summary.Failed, summary.Files)
	}
	if runErr != nil {
		return fmt.Errorf("transform: %d files need rewriting", summary.Changed)
	}
	return nil
}

// loadConfig reads the --config file, or discovers one from the first path
func loadConfig(configPath string, args []string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	start := "."
	if len(args) > 0 {
		start = args[0]
		if info, err := os.Stat(start); err == nil && !info.IsDir() {
			start = filepath.Dir(start)
		}
	}
	return config.Load(start)
}

func renderStdout(out io.Writer, results []*driver.FileResult) {
	for _, res := range results {
		if res == nil || res.Err != nil {
			continue
		}
		_, _ = io.WriteString(out, res.Result.Code)
	}
}

var (
	changedLabel = color.New(color.FgYellow)
	writtenLabel = color.New(color.FgGreen)
	failedLabel  = color.New(color.FgRed, color.Bold)
)

func renderReport(out io.Writer, results []*driver.FileResult, mode driver.Mode) {
	for _, res := range results {
		switch {
		case res == nil:
		case res.Err != nil:
			fmt.Fprintf(out, "%s %s: %v\n", failedLabel.Sprint("failed"), res.Path, res.Err)
		case res.Written:
			fmt.Fprintf(out, "%s %s (%s)\n", writtenLabel.Sprint("rewrote"), res.Path, describeCounts(res))
		case res.Changed():
			fmt.Fprintf(out, "%s %s (%s)\n", changedLabel.Sprint("would rewrite"), res.Path, describeCounts(res))
		}
	}

	summary := driver.Summarize(results)
	verb := "to rewrite"
	if mode == driver.ModeWrite {
		verb = "rewritten"
	}
	fmt.Fprintf(out, "%d files checked, %d %s, %d failed\n", summary.Files, summary.Changed, verb, summary.Failed)
}

func describeCounts(res *driver.FileResult) string {
	return fmt.Sprintf("%d messages, %d attributes", res.Result.Messages, res.Result.Attributes)
}
