// Package config resolves the runtime settings for texgen from built-in
// defaults, TEXGEN_* environment variables and command-line flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// TEXGEN_BASE_DIR.
const EnvPrefix = "TEXGEN"

const (
	// DefaultBaseDir is where category directories are created.
	DefaultBaseDir = "assets/textures/blocks"
	// DefaultSize is the width and height of every texture in pixels.
	DefaultSize = 16
	// DefaultFilename is the single texture used for every face of a block.
	DefaultFilename = "all.png"
	// DefaultDebounce is the quiet period before the watcher re-provisions.
	DefaultDebounce = 200 * time.Millisecond

	maxSize = 4096
)

// Config holds the resolved settings for a run.
type Config struct {
	BaseDir  string        `mapstructure:"base_dir"`
	Size     int           `mapstructure:"size"`
	Filename string        `mapstructure:"filename"`
	Verbose  bool          `mapstructure:"verbose"`
	DryRun   bool          `mapstructure:"dry_run"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"base-dir": "base_dir",
	"size":     "size",
	"filename": "filename",
	"verbose":  "verbose",
	"dry-run":  "dry_run",
	"watch":    "watch",
	"debounce": "debounce",
}

// Default returns a Config populated with the built-in values.
func Default() *Config {
	return &Config{
		BaseDir:  DefaultBaseDir,
		Size:     DefaultSize,
		Filename: DefaultFilename,
		Debounce: DefaultDebounce,
	}
}

// Load resolves a Config from defaults, the environment and any of the known
// flags present in flags. Flags win over environment variables, which win
// over defaults. flags may be nil. There is no configuration file.
func Load(flags *pflag.FlagSet) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("base_dir", def.BaseDir)
	v.SetDefault("size", def.Size)
	v.SetDefault("filename", def.Filename)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("dry_run", def.DryRun)
	v.SetDefault("watch", def.Watch)
	v.SetDefault("debounce", def.Debounce)

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %q: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the Config for values that would produce unusable output.
// It returns a descriptive error if:
//   - BaseDir is empty
//   - Size is outside 1..4096
//   - Filename is not a bare *.png file name
//   - Debounce is negative
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return fmt.Errorf("config: base directory is required")
	}

	if c.Size < 1 || c.Size > maxSize {
		return fmt.Errorf("config: size must be between 1 and %d (got %d)", maxSize, c.Size)
	}

	if c.Filename == "" || filepath.Base(c.Filename) != c.Filename || strings.ContainsAny(c.Filename, `/\`) {
		return fmt.Errorf("config: filename must be a bare file name (got %q)", c.Filename)
	}
	if !strings.EqualFold(filepath.Ext(c.Filename), ".png") || len(c.Filename) <= len(".png") {
		return fmt.Errorf("config: filename must end in .png (got %q)", c.Filename)
	}

	if c.Debounce < 0 {
		return fmt.Errorf("config: debounce must not be negative (got %s)", c.Debounce)
	}

	return nil
}

// TexturePath returns the texture file path for a category.
func (c *Config) TexturePath(category string) string {
	return filepath.Join(c.BlockDir(category), c.Filename)
}

// BlockDir returns the directory for a category.
func (c *Config) BlockDir(category string) string {
	return filepath.Join(c.BaseDir, category)
}

// WithOverrides applies programmatic overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is returned
// for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "baseDir":
			if s, ok := val.(string); ok {
				c.BaseDir = s
			}
		case "size":
			if n, ok := val.(int); ok {
				c.Size = n
			}
		case "filename":
			if s, ok := val.(string); ok {
				c.Filename = s
			}
		case "verbose":
			if b, ok := val.(bool); ok {
				c.Verbose = b
			}
		case "dryRun":
			if b, ok := val.(bool); ok {
				c.DryRun = b
			}
		case "watch":
			if b, ok := val.(bool); ok {
				c.Watch = b
			}
		case "debounce":
			if d, ok := val.(time.Duration); ok {
				c.Debounce = d
			}
		}
	}
	return c
}
