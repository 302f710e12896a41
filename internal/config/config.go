// Package config loads host settings for the LED background. Effect tuning is
// compiled into package led; only window, terminal, and overlay settings live
// here.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	// SyncTPS ticks the window once per rendered frame.
	SyncTPS = 0
	MinTPS  = 1
	MaxTPS = 240
	MinFPS = 1
	MaxFPS = 120
)

// Config holds every host setting.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Caption  CaptionConfig  `yaml:"caption"`

	// Seed fixes the random source; 0 seeds from the clock.
	Seed          int64         `yaml:"seed"`
	Debug         bool          `yaml:"debug"`
	StatsInterval time.Duration `yaml:"stats_interval"`
}

// WindowConfig sizes the desktop window. TPS 0 ticks once per rendered frame.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	TPS        int    `yaml:"tps"`
}

// TerminalConfig sets the terminal frame rate.
type TerminalConfig struct {
	FPS int `yaml:"fps"`
}

// CaptionConfig is the centred panel drawn over the animation.
type CaptionConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
	Hint    string `yaml:"hint"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads path over the embedded defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	// Fields missing from the file keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS != SyncTPS && (c.Window.TPS < MinTPS || c.Window.TPS > MaxTPS) {
		return fmt.Errorf("%w: window tps %d out of range %d-%d (or %d to sync with the display)", ErrInvalid, c.Window.TPS, MinTPS, MaxTPS, SyncTPS)
	}
	if c.Terminal.FPS < MinFPS || c.Terminal.FPS > MaxFPS {
		return fmt.Errorf("%w: terminal fps %d out of range %d-%d", ErrInvalid, c.Terminal.FPS, MinFPS, MaxFPS)
	}
	if c.StatsInterval < 0 {
		return fmt.Errorf("%w: stats interval %v is negative", ErrInvalid, c.StatsInterval)
	}
	return nil
}

// FrameInterval is the terminal ticker period.
func (c *Config) FrameInterval() time.Duration {
	if c.Terminal.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.Terminal.FPS)
}

// SeedOr returns the configured seed, or fallback when none is set.
func (c *Config) SeedOr(fallback int64) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return fallback
}
