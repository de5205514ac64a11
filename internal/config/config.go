package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pagepad/internal/errors"
	"pagepad/internal/pattern"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Error policies for filesystem failures during a run.
const (
	OnErrorAbort    = "abort"
	OnErrorContinue = "continue"
)

// DefaultExtensions are the image types considered for renaming.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "gif", "tif", "tiff"}

// Settings controls how files are padded and renamed.
type Settings struct {
	PadWidth   int      `yaml:"pad_width"`  // Minimum digits in a page number
	OnError    string   `yaml:"on_error"`   // abort or continue
	Extensions []string `yaml:"extensions"` // Image extensions, case-insensitive
	SkipDirs   []string `yaml:"skip_dirs"`  // Globs of book directory names to skip
	Debug      bool     `yaml:"debug"`      // Verbose diagnostics on stderr
}

// Watch lists the book directories followed by watch mode.
type Watch struct {
	Directories []string `yaml:"directories"`
}

// Config represents the application configuration structure.
type Config struct {
	Root     string   `yaml:"root"` // Directory holding one subdirectory per book
	Settings Settings `yaml:"settings"`
	Watch    Watch    `yaml:"watch"`
}

// DefaultPath returns ~/.config/pagepad/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pagepad", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.FromOS("error reading config file", path, err)
	}

	// Fields missing from the file keep their defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// LoadRequiredConfigFile is LoadConfigFile for a path the user asked for
// explicitly. A missing file is an error rather than a silent default.
func LoadRequiredConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewConfigError("config file not found", path, errors.ConfigNotFound, err)
	}
	return LoadConfigFile(path)
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Settings.PadWidth = pattern.DefaultWidth
	cfg.Settings.OnError = OnErrorAbort
	cfg.Settings.Extensions = append([]string(nil), DefaultExtensions...)
	cfg.Settings.SkipDirs = []string{}
	cfg.Watch.Directories = []string{}
	return cfg
}

// normalize lowercases extensions and strips leading dots.
func (c *Config) normalize() {
	for i, ext := range c.Settings.Extensions {
		c.Settings.Extensions[i] = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	}
	c.Settings.OnError = strings.ToLower(strings.TrimSpace(c.Settings.OnError))
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.FromOS("failed to create config directory", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.FromOS("failed to write config file", path, err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.ConfigNotSet, nil)
	}

	if c.Settings.PadWidth < 1 {
		return errors.NewConfigError("pad width must be >= 1", "pad_width", errors.InvalidConfig, nil)
	}

	if c.Settings.OnError != OnErrorAbort && c.Settings.OnError != OnErrorContinue {
		return errors.NewConfigError(fmt.Sprintf("invalid error policy %q", c.Settings.OnError), "on_error", errors.InvalidConfig, nil)
	}

	if len(c.Settings.Extensions) == 0 {
		return errors.NewConfigError("at least one extension is required", "extensions", errors.InvalidConfig, nil)
	}
	for i, ext := range c.Settings.Extensions {
		if ext == "" {
			return errors.NewConfigError(fmt.Sprintf("extension %d is empty", i), "extensions", errors.InvalidConfig, nil)
		}
	}

	if _, err := c.SkipGlobs(); err != nil {
		return err
	}

	for i, dir := range c.Watch.Directories {
		if dir == "" {
			return errors.NewConfigError(fmt.Sprintf("watch directory %d is empty", i), "watch.directories", errors.InvalidConfig, nil)
		}
	}

	return nil
}

// ImageGlob compiles the extension list into a single case-folded glob
// such as *.{jpg,png}. Match it against a lowercased filename.
func (c *Config) ImageGlob() (glob.Glob, error) {
	quoted := make([]string, 0, len(c.Settings.Extensions))
	for _, ext := range c.Settings.Extensions {
		quoted = append(quoted, glob.QuoteMeta(strings.ToLower(ext)))
	}
	g, err := glob.Compile("*.{" + strings.Join(quoted, ",") + "}")
	if err != nil {
		return nil, errors.NewConfigError("invalid extension list", "extensions", errors.InvalidConfig, err)
	}
	return g, nil
}

// SkipGlobs compiles the skip_dirs patterns.
func (c *Config) SkipGlobs() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.Settings.SkipDirs))
	for _, p := range c.Settings.SkipDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("invalid skip_dirs pattern %q", p), "skip_dirs", errors.InvalidConfig, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
