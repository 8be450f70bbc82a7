// Package config loads the project settings of jsx-localize: the marker
// surface, the emitted calls and the files to rewrite.
//
// Settings come from a jsx-localize.toml found by walking up from the start
// directory, then from JSX_LOCALIZE_* environment variables:
//
//	[markers]
//	attribute = "i18n"
//	wrapper_tag = "i18n"
//	attribute_prefix = "i18n-attr-"
//
//	[output]
//	localize_tag = "$localize"
//	helper_name = "$jsxify"
//	helper_module = "@flarelabs-net/jsx-localize/react"
//
//	[files]
//	extensions = [".jsx", ".tsx"]
//
// A missing file leaves the defaults in place.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"jsx-localize/packages/localize/transform"
)

// FileName is the name of the project configuration file
const FileName = "jsx-localize.toml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "JSX_LOCALIZE_"

// Config is the full project configuration
type Config struct {
	Markers MarkersConfig `toml:"markers" envPrefix:"MARKER_"`
	Output  OutputConfig  `toml:"output" envPrefix:"OUTPUT_"`
	Files   FilesConfig   `toml:"files" envPrefix:"FILES_"`

	// Path is the configuration file that was read, empty for defaults.
	Path string `toml:"-"`
}

// MarkersConfig names the annotations recognized in source
type MarkersConfig struct {
	Attribute       string `toml:"attribute" env:"ATTRIBUTE"`
	WrapperTag      string `toml:"wrapper_tag" env:"WRAPPER_TAG"`
	AttributePrefix string `toml:"attribute_prefix" env:"ATTRIBUTE_PREFIX"`
}

// OutputConfig names the calls the transform emits
type OutputConfig struct {
	LocalizeTag  string `toml:"localize_tag" env:"LOCALIZE_TAG"`
	HelperName   string `toml:"helper_name" env:"HELPER_NAME"`
	HelperModule string `toml:"helper_module" env:"HELPER_MODULE"`
}

// FilesConfig selects the files a directory walk rewrites
type FilesConfig struct {
	Extensions []string `toml:"extensions" env:"EXTENSIONS" envSeparator:","`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Markers: MarkersConfig{
			Attribute:       transform.DefaultMarkerAttribute,
			WrapperTag:      transform.DefaultWrapperTag,
			AttributePrefix: transform.DefaultAttributeMarkerPrefix,
		},
		Output: OutputConfig{
			LocalizeTag:  transform.DefaultLocalizeTag,
			HelperName:   transform.DefaultHelperName,
			HelperModule: transform.DefaultHelperModule,
		},
		Files: FilesConfig{
			Extensions: []string{".jsx", ".tsx"},
		},
	}
}

// Find walks up from startDir looking for jsx-localize.toml
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load discovers the configuration file from startDir and applies
// environment overrides on top of it
func Load(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		cfg := Default()
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path and applies environment overrides
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Validate checks that the marker names can be told apart
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Markers.Attribute) == "" {
		return errors.New("[markers].attribute must not be empty")
	}
	if strings.TrimSpace(c.Markers.AttributePrefix) == "" {
		return errors.New("[markers].attribute_prefix must not be empty")
	}
	if strings.HasPrefix(c.Markers.Attribute, c.Markers.AttributePrefix) {
		return fmt.Errorf("[markers].attribute %q must not start with attribute_prefix %q",
			c.Markers.Attribute, c.Markers.AttributePrefix)
	}
	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("[files].extensions: %q must start with '.'", ext)
		}
	}
	return nil
}

// TransformOptions maps the configuration onto the transform options
func (c *Config) TransformOptions() *transform.Options {
	return &transform.Options{
		MarkerAttribute:       c.Markers.Attribute,
		WrapperTag:            c.Markers.WrapperTag,
		AttributeMarkerPrefix: c.Markers.AttributePrefix,
		LocalizeTag:           c.Output.LocalizeTag,
		HelperName:            c.Output.HelperName,
		HelperModule:          c.Output.HelperModule,
	}
}

// MatchesFile reports whether a directory walk should rewrite path
func (c *Config) MatchesFile(path string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range c.Files.Extensions {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}
