// Package config provides YAML/TOML configuration loading for blockfall,
// with embedded defaults and environment/flag overrides.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Config contains all runtime settings.
type Config struct {
	Seed    int64         `yaml:"seed" toml:"seed"`
	Gravity GravityConfig `yaml:"gravity" toml:"gravity"`
	Display DisplayConfig `yaml:"display" toml:"display"`
	Theme   ThemeConfig   `yaml:"theme" toml:"theme"`
	Keys    KeysConfig    `yaml:"keys" toml:"keys"`
}

// GravityConfig controls how fast pieces fall.
type GravityConfig struct {
	PeriodMS int `yaml:"period_ms" toml:"period_ms"`
}

// DisplayConfig controls the frame loop.
type DisplayConfig struct {
	FPS             int `yaml:"fps" toml:"fps"`
	GameOverDelayMS int `yaml:"game_over_delay_ms" toml:"game_over_delay_ms"`
}

// ThemeConfig assigns a glyph and color to each cell kind.
type ThemeConfig struct {
	Border  CellStyle `yaml:"border" toml:"border"`
	Falling CellStyle `yaml:"falling" toml:"falling"`
	Locked  CellStyle `yaml:"locked" toml:"locked"`
	Empty   CellStyle `yaml:"empty" toml:"empty"`
}

// CellStyle is one entry of the theme.
type CellStyle struct {
	Glyph string `yaml:"glyph" toml:"glyph"`
	Color string `yaml:"color" toml:"color"`
}

// Rune returns the glyph as a single rune.
func (s CellStyle) Rune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	return r
}

// ColorValue resolves the color name, falling back to the default color.
func (s CellStyle) ColorValue() core.Color {
	c, err := core.ParseColor(s.Color)
	if err != nil {
		return core.ColorDefault
	}
	return c
}

// KeysConfig lists the key names (as Bubble Tea reports them) per action.
type KeysConfig struct {
	Rotate []string `yaml:"rotate" toml:"rotate"`
	Left   []string `yaml:"left" toml:"left"`
	Right  []string `yaml:"right" toml:"right"`
	Quit   []string `yaml:"quit" toml:"quit"`
}

// GravityPeriod returns the time between gravity steps.
func (c Config) GravityPeriod() time.Duration {
	return time.Duration(c.Gravity.PeriodMS) * time.Millisecond
}

// GameOverDelay returns how long the final frame stays on screen.
func (c Config) GameOverDelay() time.Duration {
	return time.Duration(c.Display.GameOverDelayMS) * time.Millisecond
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error

	if c.Gravity.PeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.period_ms must be positive, got %d", c.Gravity.PeriodMS))
	}
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be in 1..240, got %d", c.Display.FPS))
	}
	if c.Display.GameOverDelayMS < 0 {
		errs = append(errs, fmt.Errorf("display.game_over_delay_ms must not be negative, got %d", c.Display.GameOverDelayMS))
	}

	styles := []struct {
		name  string
		style CellStyle
	}{
		{"border", c.Theme.Border},
		{"falling", c.Theme.Falling},
		{"locked", c.Theme.Locked},
		{"empty", c.Theme.Empty},
	}
	for _, s := range styles {
		if utf8.RuneCountInString(s.style.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("theme.%s.glyph must be a single character, got %q", s.name, s.style.Glyph))
		}
		if _, err := core.ParseColor(s.style.Color); err != nil {
			errs = append(errs, fmt.Errorf("theme.%s.color: %w", s.name, err))
		}
	}

	keys := []struct {
		name string
		list []string
	}{
		{"rotate", c.Keys.Rotate},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"quit", c.Keys.Quit},
	}
	for _, k := range keys {
		if len(k.list) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must list at least one key", k.name))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return nil
}
