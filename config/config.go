// Package config loads pcomb settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

const DefaultFileName = "pcomb.toml"

// Formats lists the accepted values of Output.Format.
var Formats = []string{"json", "yaml", "text"}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	LSP    LSPConfig    `toml:"lsp"`
}

type LogConfig struct {
	// Verbosity is the commonlog verbosity: 0 errors only, 1 adds
	// warnings and notices, 2 info, 3 and above debug.
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

type LSPConfig struct {
	Name string `toml:"name"`
}

func Default() *Config {
	return &Config{
		Log:    LogConfig{Verbosity: 0},
		Output: OutputConfig{Format: "json"},
		LSP:    LSPConfig{Name: "pcomb"},
	}
}

// Decode reads TOML from r on top of the defaults. Unknown keys are errors.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config: unknown keys %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got %q", Formats, c.Output.Format)
	}
	if c.LSP.Name == "" {
		return errors.New("lsp.name must not be empty")
	}
	return nil
}

// LogFile returns the configured log file or nil for stderr, in the form
// commonlog.Configure expects.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	return &path
}
