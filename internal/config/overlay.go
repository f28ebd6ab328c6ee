package config

import "github.com/spf13/viper"

// Override keys. They double as flag names (with dashes) and, upper-cased
// behind the BLOCKFALL_ prefix, as environment variables.
const (
	KeyGravityMS  = "gravity_ms"
	KeyFPS        = "fps"
	KeySeed       = "seed"
	KeyGameOverMS = "game_over_ms"
)

// Overlay applies every override key that v has a value for (set, bound
// flag that was changed, or environment variable) and validates the result.
func Overlay(cfg Config, v *viper.Viper) (Config, error) {
	if v.IsSet(KeyGravityMS) {
		cfg.Gravity.PeriodMS = v.GetInt(KeyGravityMS)
	}
	if v.IsSet(KeyFPS) {
		cfg.Display.FPS = v.GetInt(KeyFPS)
	}
	if v.IsSet(KeySeed) {
		cfg.Seed = v.GetInt64(KeySeed)
	}
	if v.IsSet(KeyGameOverMS) {
		cfg.Display.GameOverDelayMS = v.GetInt(KeyGameOverMS)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
