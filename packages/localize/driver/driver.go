// Package driver runs the transform over many files at once.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"jsx-localize/packages/localize/config"
	"jsx-localize/packages/localize/transform"
)

// Mode selects what happens to a rewritten file
type Mode int

const (
	// ModeReport only transforms and reports.
	ModeReport Mode = iota
	// ModeWrite writes changed files back in place.
	ModeWrite
	// ModeCheck fails when any file would change.
	ModeCheck
)

// ErrWouldChange is returned in ModeCheck when at least one file needs rewriting
var ErrWouldChange = errors.New("files would be rewritten")

// Options configures a run
type Options struct {
	Config *config.Config
	Mode   Mode
	// Jobs bounds the files transformed concurrently; zero uses GOMAXPROCS.
	Jobs   int
	Logger zerolog.Logger
}

// FileResult is the outcome for one file
type FileResult struct {
	Path     string
	Result   *transform.Result
	Err      error
	Duration time.Duration
	Written  bool
}

// Changed reports whether the file was or would be rewritten
func (r *FileResult) Changed() bool {
	return r.Err == nil && r.Result != nil && r.Result.Changed()
}

// CollectFiles expands paths into the source files a run visits. Files named
// directly are kept whatever their extension; directories are walked and
// filtered by the configured extensions. node_modules and hidden
// directories are skipped.
func CollectFiles(paths []string, cfg *config.Config) ([]string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (name == "node_modules" || (len(name) > 1 && name[0] == '.')) {
					return filepath.SkipDir
				}
				return nil
			}
			if cfg.MatchesFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %q: %w", root, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run transforms every file under paths. Per-file failures are reported in
// the results and do not stop the other files; the returned error covers
// collection failures, cancellation and ErrWouldChange.
func Run(ctx context.Context, paths []string, opts Options) ([]*FileResult, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	files, err := CollectFiles(paths, cfg)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	transformOptions := cfg.TransformOptions()
	log := opts.Logger

	results := make([]*FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processFile(path, transformOptions, opts.Mode)
			logResult(log, results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	if opts.Mode == ModeCheck {
		for _, result := range results {
			if result.Changed() {
				return results, ErrWouldChange
			}
		}
	}
	return results, nil
}

func processFile(path string, options *transform.Options, mode Mode) *FileResult {
	start := time.Now()
	result := &FileResult{Path: path}
	defer func() { result.Duration = time.Since(start) }()

	source, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to read %q: %w", path, err)
		return result
	}
	result.Result, result.Err = transform.Transform(string(source), path, options)
	if result.Err != nil || mode != ModeWrite || !result.Result.Changed() {
		return result
	}

	info, err := os.Stat(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to stat %q: %w", path, err)
		return result
	}
	if err := os.WriteFile(path, []byte(result.Result.Code), info.Mode().Perm()); err != nil {
		result.Err = fmt.Errorf("failed to write %q: %w", path, err)
		return result
	}
	result.Written = true
	return result
}

func logResult(log zerolog.Logger, result *FileResult) {
	if result.Err != nil {
		log.Error().Err(result.Err).Str("file", result.Path).Msg("transform failed")
		return
	}
	log.Debug().
		Str("file", result.Path).
		Bool("changed", result.Result.Changed()).
		Int("messages", result.Result.Messages).
		Int("attributes", result.Result.Attributes).
		Bool("written", result.Written).
		Dur("duration", result.Duration).
		Msg("transformed")
}

// Summary tallies a run
type Summary struct {
	Files   int
	Changed int
	Written int
	Failed  int
}

// Summarize counts the results of a run
func Summarize(results []*FileResult) Summary {
	var s Summary
	for _, result := range results {
		if result == nil {
			continue
		}
		s.Files++
		switch {
		case result.Err != nil:
			s.Failed++
		case result.Changed():
			s.Changed++
		}
		if result.Written {
			s.Written++
		}
	}
	return s
}
