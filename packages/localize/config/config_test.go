package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsx-localize/packages/localize/config"
	"jsx-localize/packages/localize/transform"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, transform.DefaultOptions(), cfg.TransformOptions())
	assert.True(t, cfg.MatchesFile("src/App.tsx"))
	assert.True(t, cfg.MatchesFile("src/App.JSX"))
	assert.False(t, cfg.MatchesFile("src/util.ts"))
}

func TestLoadFile(t *testing.T) {
	t.Run("should override only the keys present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		writeFile(t, path, `
[markers]
attribute = "t"

[output]
helper_module = "my-runtime"

[files]
extensions = [".jsx"]
`)
		cfg, err := config.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, path, cfg.Path)
		assert.Equal(t, "t", cfg.Markers.Attribute)
		assert.Equal(t, transform.DefaultWrapperTag, cfg.Markers.WrapperTag)
		assert.Equal(t, "my-runtime", cfg.TransformOptions().HelperModule)
		assert.Equal(t, transform.DefaultHelperName, cfg.TransformOptions().HelperName)
		assert.False(t, cfg.MatchesFile("App.tsx"))
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		writeFile(t, path, "[markers]\nattr = \"t\"\n")
		_, err := config.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown keys: markers.attr")
	})

	t.Run("should report invalid TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		writeFile(t, path, "[markers\n")
		_, err := config.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("should reject a marker that looks like an attribute marker", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		writeFile(t, path, "[markers]\nattribute = \"i18n-attr-x\"\n")
		_, err := config.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not start with attribute_prefix")
	})

	t.Run("should reject extensions without a dot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		writeFile(t, path, "[files]\nextensions = [\"tsx\"]\n")
		_, err := config.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must start with '.'")
	})
}

func TestLoad(t *testing.T) {
	t.Run("should find the file in a parent directory", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, config.FileName), "[markers]\nwrapper_tag = \"Trans\"\n")
		nested := filepath.Join(root, "src", "components")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		cfg, err := config.Load(nested)
		require.NoError(t, err)
		assert.Equal(t, "Trans", cfg.Markers.WrapperTag)
		assert.Equal(t, filepath.Join(root, config.FileName), cfg.Path)
	})

	t.Run("should apply environment overrides", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, config.FileName), "[output]\nhelper_name = \"$fromFile\"\n")
		t.Setenv("JSX_LOCALIZE_OUTPUT_HELPER_NAME", "$fromEnv")
		t.Setenv("JSX_LOCALIZE_FILES_EXTENSIONS", ".jsx,.mdx")

		cfg, err := config.Load(root)
		require.NoError(t, err)
		assert.Equal(t, "$fromEnv", cfg.Output.HelperName)
		assert.Equal(t, []string{".jsx", ".mdx"}, cfg.Files.Extensions)
	})

	t.Run("should validate environment overrides", func(t *testing.T) {
		t.Setenv("JSX_LOCALIZE_MARKER_ATTRIBUTE", "i18n-attr-oops")
		_, err := config.Load(t.TempDir())
		require.Error(t, err)
	})
}
