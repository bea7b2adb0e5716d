// Package config provides configuration loading for the game.
//
// Settings come from, lowest precedence first: built-in defaults, an
// optional YAML or TOML file, WORDLE_* environment variables, and finally
// command line flags (applied by the CLI).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle-term/internal/game"
	"github.com/robalobadob/wordle-term/internal/render"
	"github.com/robalobadob/wordle-term/internal/words"
)

// Accepted enum values. Scoring and color names belong to the packages
// that interpret them.
const (
	ScoringPositional = game.ScoringPositional
	ScoringClassic    = game.ScoringClassic

	UIModeLine = "line"
	UIModeTUI  = "tui"

	ColorAuto   = string(render.ColorAuto)
	ColorAlways = string(render.ColorAlways)
	ColorNever  = string(render.ColorNever)

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds the complete game configuration.
type Config struct {
	Words WordsConfig `koanf:"words"`
	Game  GameConfig  `koanf:"game"`
	UI    UIConfig    `koanf:"ui"`
	Log   LogConfig   `koanf:"log"`
}

// WordsConfig selects the dictionary.
type WordsConfig struct {
	Source  string        `koanf:"source"`  // "embedded", a file path, or an http(s) URL
	Timeout time.Duration `koanf:"timeout"` // bound on loading the dictionary
}

// GameConfig holds session rules.
type GameConfig struct {
	MaxAttempts int    `koanf:"max_attempts"`
	Scoring     string `koanf:"scoring"`
	Daily       bool   `koanf:"daily"`
	DailySalt   string `koanf:"daily_salt"`
	Cheat       bool   `koanf:"cheat"`
}

// UIConfig selects the front end.
type UIConfig struct {
	Mode  string `koanf:"mode"`
	Color string `koanf:"color"`
}

// LogConfig controls zerolog output on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Words: WordsConfig{
			Source:  words.DefaultSource,
			Timeout: 15 * time.Second,
		},
		Game: GameConfig{
			MaxAttempts: 5,
			Scoring:     ScoringPositional,
			DailySalt:   "local_dev_salt",
		},
		UI: UIConfig{
			Mode:  UIModeLine,
			Color: ColorAuto,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: LogFormatConsole,
		},
	}
}

// Validate lower-cases enum values in place, then checks ranges and enums.
func (c *Config) Validate() error {
	for _, f := range []*string{&c.Game.Scoring, &c.UI.Mode, &c.UI.Color, &c.Log.Level, &c.Log.Format} {
		*f = strings.ToLower(strings.TrimSpace(*f))
	}

	var errs []error
	if c.Words.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("words.timeout must be positive, got %s", c.Words.Timeout))
	}
	if c.Game.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("game.max_attempts must be at least 1, got %d", c.Game.MaxAttempts))
	}
	if err := oneOf("game.scoring", c.Game.Scoring, ScoringPositional, ScoringClassic); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("ui.mode", c.UI.Mode, UIModeLine, UIModeTUI); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("ui.color", c.UI.Color, ColorAuto, ColorAlways, ColorNever); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if err := oneOf("log.format", c.Log.Format, LogFormatConsole, LogFormatJSON); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func oneOf(key, val string, allowed ...string) error {
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, "|"), val)
}
