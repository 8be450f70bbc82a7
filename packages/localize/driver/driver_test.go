package driver_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsx-localize/packages/localize/config"
	"jsx-localize/packages/localize/driver"
)

const (
	marked   = "export const A = () => <p i18n>Hello world!</p>;\n"
	unmarked = "export const B = () => <p>Hello</p>;\n"
	broken   = "export const C = () => <img i18n-attr-alt/>;\n"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"src/a.tsx":                  marked,
		"src/b.jsx":                  unmarked,
		"src/nested/c.tsx":           marked,
		"src/util.ts":                marked,
		"node_modules/pkg/index.jsx": marked,
		".cache/d.tsx":               marked,
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var rel []string
	for _, path := range paths {
		r, err := filepath.Rel(root, path)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestCollectFiles(t *testing.T) {
	root := setupTree(t)

	t.Run("should walk directories by extension", func(t *testing.T) {
		files, err := driver.CollectFiles([]string{root}, config.Default())
		require.NoError(t, err)
		assert.Equal(t, []string{"src/a.tsx", "src/b.jsx", "src/nested/c.tsx"}, relPaths(t, root, files))
	})

	t.Run("should keep files named directly and drop duplicates", func(t *testing.T) {
		util := filepath.Join(root, "src", "util.ts")
		files, err := driver.CollectFiles([]string{util, filepath.Join(root, "src"), util}, config.Default())
		require.NoError(t, err)
		assert.Equal(t, []string{"src/a.tsx", "src/b.jsx", "src/nested/c.tsx", "src/util.ts"}, relPaths(t, root, files))
	})

	t.Run("should fail on missing paths", func(t *testing.T) {
		_, err := driver.CollectFiles([]string{filepath.Join(root, "missing")}, nil)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("should report without writing", func(t *testing.T) {
		root := setupTree(t)
		results, err := driver.Run(context.Background(), []string{root}, driver.Options{Logger: zerolog.Nop()})
		require.NoError(t, err)
		require.Len(t, results, 3)

		summary := driver.Summarize(results)
		assert.Equal(t, driver.Summary{Files: 3, Changed: 2}, summary)

		content, err := os.ReadFile(filepath.Join(root, "src", "a.tsx"))
		require.NoError(t, err)
		assert.Equal(t, marked, string(content))
	})

	t.Run("should write changed files", func(t *testing.T) {
		root := setupTree(t)
		results, err := driver.Run(context.Background(), []string{root}, driver.Options{Mode: driver.ModeWrite, Jobs: 2, Logger: zerolog.Nop()})
		require.NoError(t, err)
		assert.Equal(t, 2, driver.Summarize(results).Written)

		content, err := os.ReadFile(filepath.Join(root, "src", "nested", "c.tsx"))
		require.NoError(t, err)
		assert.Equal(t, "export const A = () => <p>{$localize`Hello world!`}</p>;\n", string(content))

		content, err = os.ReadFile(filepath.Join(root, "src", "b.jsx"))
		require.NoError(t, err)
		assert.Equal(t, unmarked, string(content))
	})

	t.Run("should fail a check when files would change", func(t *testing.T) {
		root := setupTree(t)
		_, err := driver.Run(context.Background(), []string{root}, driver.Options{Mode: driver.ModeCheck, Logger: zerolog.Nop()})
		assert.ErrorIs(t, err, driver.ErrWouldChange)

		clean := filepath.Join(root, "src", "b.jsx")
		_, err = driver.Run(context.Background(), []string{clean}, driver.Options{Mode: driver.ModeCheck, Logger: zerolog.Nop()})
		assert.NoError(t, err)
	})

	t.Run("should report per-file failures and keep going", func(t *testing.T) {
		root := setupTree(t)
		bad := filepath.Join(root, "src", "bad.tsx")
		require.NoError(t, os.WriteFile(bad, []byte(broken), 0o644))

		var logs bytes.Buffer
		logger := zerolog.New(zerolog.SyncWriter(&logs))
		results, err := driver.Run(context.Background(), []string{root}, driver.Options{Mode: driver.ModeWrite, Logger: logger})
		require.NoError(t, err)

		summary := driver.Summarize(results)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 2, summary.Written)

		content, err := os.ReadFile(bad)
		require.NoError(t, err)
		assert.Equal(t, broken, string(content))
		assert.Contains(t, logs.String(), "doesn't have matching peer attribute")
	})

	t.Run("should stop on a cancelled context", func(t *testing.T) {
		root := setupTree(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := driver.Run(ctx, []string{root}, driver.Options{Logger: zerolog.Nop()})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
