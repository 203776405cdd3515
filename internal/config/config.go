// internal/config/config.go
//
// Runtime configuration for the console.
//
// Sources, lowest to highest precedence:
//   1. Defaults below.
//   2. A .env file in the working directory (optional, via godotenv).
//   3. Process environment.
//   4. Command-line flags (applied by the cli package).
//
// Environment variables:
//   LOG_LEVEL=warn            zerolog level name
//   GAME_LANG=en              message catalog (en | pt)
//   PIECE_SEED=0              random seed; 0 seeds from the clock
//   GAME_MESSAGES_FILE=path   optional catalog overlay

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/robalobadob/blockqueue/internal/messages"
)

const (
	defaultLogLevel = "warn"
	defaultLang     = messages.DefaultLang
)

// Config holds the settings for one run.
type Config struct {
	LogLevel     string
	Lang         string
	Seed         int64
	MessagesFile string
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel:     getEnv("LOG_LEVEL", defaultLogLevel),
		Lang:         getEnv("GAME_LANG", defaultLang),
		MessagesFile: os.Getenv("GAME_MESSAGES_FILE"),
	}
	if raw := os.Getenv("PIECE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: PIECE_SEED %q", raw)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "config: log level %q", c.LogLevel)
	}
	if !messages.Supported(c.Lang) {
		return errors.Errorf("config: unsupported language %q (have %v)", c.Lang, messages.Languages())
	}
	if c.MessagesFile != "" && !messages.Exists(c.MessagesFile) {
		return errors.Errorf("config: messages file %q not found", c.MessagesFile)
	}
	return nil
}

// Level returns the parsed log level, defaulting to warn on bad input.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
