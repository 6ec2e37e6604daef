package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/slider/internal/icons"
	"github.com/llehouerou/slider/internal/ui/slider"
)

const appName = "slider"

type Config struct {
	Icons   string `koanf:"icons"`   // "nerd", "unicode", or "none"
	Pointer string `koanf:"pointer"` // "mouse" or "touch"

	Timing TimingConfig `koanf:"timing"`

	// Sliders shown by the mixer, top to bottom. Empty means DefaultSliders.
	Sliders []SliderConfig `koanf:"sliders"`
}

// TimingConfig holds the scheduling delays. Durations are strings such as
// "5s" or "50ms" in the TOML file.
type TimingConfig struct {
	RefreshInterval time.Duration `koanf:"refresh_interval"` // background geometry refresh (default: 5s)
	ResizeDebounce  time.Duration `koanf:"resize_debounce"`  // resize coalescing (default: 50ms)
	SaveDebounce    time.Duration `koanf:"save_debounce"`    // value persistence (default: 1s)
}

// SliderConfig describes one slider. Unset bounds take the slider defaults
// (0, 100, 1).
type SliderConfig struct {
	Name     string   `koanf:"name"` // persistence key, unique
	Label    string   `koanf:"label"`
	Min      *float64 `koanf:"min"`
	Max      *float64 `koanf:"max"`
	Step     *float64 `koanf:"step"`
	Discrete bool     `koanf:"discrete"`
	Disabled bool     `koanf:"disabled"`
	Value    *float64 `koanf:"value"` // initial value when nothing was saved
}

// Default delays.
const (
	DefaultRefreshInterval = slider.DefaultRefreshInterval
	DefaultResizeDebounce  = slider.DefaultResizeDebounce
	DefaultSaveDebounce    = time.Second
)

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later files override earlier ones.
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Icons:   string(icons.StyleUnicode),
		Pointer: slider.PointerMouse.String(),
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if len(cfg.Sliders) == 0 {
		cfg.Sliders = DefaultSliders()
	}
	for i := range cfg.Sliders {
		if cfg.Sliders[i].Name == "" {
			cfg.Sliders[i].Name = fmt.Sprintf("slider%d", i+1)
		}
		if cfg.Sliders[i].Label == "" {
			cfg.Sliders[i].Label = cfg.Sliders[i].Name
		}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/slider/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// DefaultSliders is the mixer shown when the config declares no sliders.
func DefaultSliders() []SliderConfig {
	return []SliderConfig{
		{Name: "master", Label: "Master", Value: ptr(50)},
		{Name: "bass", Label: "Bass", Min: ptr(-12), Max: ptr(12), Discrete: true, Value: ptr(0)},
		{Name: "treble", Label: "Treble", Min: ptr(-12), Max: ptr(12), Discrete: true, Value: ptr(0)},
		{Name: "balance", Label: "Balance", Min: ptr(-1), Max: ptr(1), Step: ptr(0.1), Value: ptr(0)},
	}
}

func ptr(v float64) *float64 { return &v }

// Range returns the slider range with defaults applied.
func (s SliderConfig) Range() slider.Range {
	r := slider.DefaultRange()
	if s.Min != nil {
		r.Min = *s.Min
	}
	if s.Max != nil {
		r.Max = *s.Max
	}
	if s.Step != nil {
		r.Step = *s.Step
	}
	return r
}

// Initial returns the configured initial value, or the range minimum.
func (s SliderConfig) Initial() float64 {
	if s.Value != nil {
		return *s.Value
	}
	return s.Range().Min
}

// PointerSource returns the configured pointer source.
func (c *Config) PointerSource() slider.PointerSource {
	p, err := slider.ParsePointerSource(c.Pointer)
	if err != nil {
		return slider.PointerMouse
	}
	return p
}

// GetTiming returns the timing configuration with defaults applied.
func (c *Config) GetTiming() TimingConfig {
	t := c.Timing
	if t.RefreshInterval <= 0 {
		t.RefreshInterval = DefaultRefreshInterval
	}
	if t.ResizeDebounce <= 0 {
		t.ResizeDebounce = DefaultResizeDebounce
	}
	if t.SaveDebounce <= 0 {
		t.SaveDebounce = DefaultSaveDebounce
	}
	return t
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	switch icons.Style(c.Icons) {
	case icons.StyleNerd, icons.StyleUnicode, icons.StyleNone:
	default:
		errs = append(errs, fmt.Errorf("icons: unknown style %q", c.Icons))
	}
	if _, err := slider.ParsePointerSource(c.Pointer); err != nil {
		errs = append(errs, fmt.Errorf("pointer: %w", err))
	}
	if c.Timing.RefreshInterval < 0 || c.Timing.ResizeDebounce < 0 || c.Timing.SaveDebounce < 0 {
		errs = append(errs, errors.New("timing: durations must not be negative"))
	}

	seen := make(map[string]bool, len(c.Sliders))
	for i, s := range c.Sliders {
		if seen[s.Name] {
			errs = append(errs, fmt.Errorf("sliders[%d]: duplicate name %q", i, s.Name))
		}
		seen[s.Name] = true
		if err := s.Range().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("sliders[%d] %q: %w", i, s.Name, err))
		}
	}

	return errors.Join(errs...)
}
