package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/blockfall.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Gravity: GravityConfig{
			PeriodMS: 300,
		},
		Display: DisplayConfig{
			FPS:             30,
			GameOverDelayMS: 2000,
		},
		Theme: ThemeConfig{
			Border:  CellStyle{Glyph: "#", Color: "gray"},
			Falling: CellStyle{Glyph: "A", Color: "bright_cyan"},
			Locked:  CellStyle{Glyph: "O", Color: "yellow"},
			Empty:   CellStyle{Glyph: ".", Color: "default"},
		},
		Keys: KeysConfig{
			Rotate: []string{"w", "up"},
			Left:   []string{"a", "left"},
			Right:  []string{"d", "right"},
			Quit:   []string{"q", "ctrl+c"},
		},
	}
}
