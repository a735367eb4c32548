package inks

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Timestep selects how Engine.Step schedules ticks.
type Timestep string

const (
	// TimestepFixed runs ticks at a constant interval, catching up on lag.
	TimestepFixed Timestep = "fixed"
	// TimestepVariable runs exactly one tick per Step.
	TimestepVariable Timestep = "variable"
)

// Config holds engine settings. It is usually decoded from YAML.
type Config struct {
	Title           string   `yaml:"title"`
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
	Framerate       int      `yaml:"framerate"`
	Timestep        Timestep `yaml:"timestep"`
	MaxCatchUpTicks int      `yaml:"max_catch_up_ticks"`
	Debug           bool     `yaml:"debug"`
	Background      Color    `yaml:"background"`
	Seed            uint64   `yaml:"seed"`
	LogLevel        string   `yaml:"log_level"`
	ScreenshotDir   string   `yaml:"screenshot_dir"`
}

// DefaultConfig returns a 256x256 window running a fixed 60 fps loop.
func DefaultConfig() Config {
	return Config{
		Title:           "inks",
		Width:           256,
		Height:          256,
		Framerate:       60,
		Timestep:        TimestepFixed,
		MaxCatchUpTicks: 10,
		Background:      ColorNone,
		LogLevel:        "info",
		ScreenshotDir:   "screenshots",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// ParseConfig decodes YAML bytes on top of DefaultConfig and validates them.
func ParseConfig(data []byte) (Config, error) {
	return DecodeConfig(bytes.NewReader(data))
}

// DecodeConfig decodes YAML from r on top of DefaultConfig and validates it.
// An empty document yields the defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.Framerate <= 0 || c.Framerate > 1000:
		return fmt.Errorf("framerate %d: %w", c.Framerate, ErrInvalidConfig)
	case c.Timestep != TimestepFixed && c.Timestep != TimestepVariable:
		return fmt.Errorf("timestep %q: %w", c.Timestep, ErrInvalidConfig)
	case c.MaxCatchUpTicks <= 0:
		return fmt.Errorf("max_catch_up_ticks %d: %w", c.MaxCatchUpTicks, ErrInvalidConfig)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#'
// is optional. "none" and "" yield ColorNone.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" || strings.EqualFold(s, "none") {
		return ColorNone, nil
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return Color{}, fmt.Errorf("color %q: %w", s, ErrInvalidConfig)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, ErrInvalidConfig)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// UnmarshalYAML decodes a hex color string.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as "#rrggbbaa".
func (c Color) MarshalYAML() (any, error) {
	if c.IsNone() {
		return "none", nil
	}
	b := func(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A)), nil
}
