package editor

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultHistoryLimit = 256
	DefaultQueueSize    = 64
	DefaultLogPrefix    = "scenedit"
)

var ErrInvalidConfig = errors.New("editor: invalid config")

// Config controls a Session.
type Config struct {
	// HistoryLimit caps the number of stored commands. 0 keeps every command.
	HistoryLimit int    `env:"SCENEDIT_HISTORY_LIMIT" envDefault:"256"`
	QueueSize    int    `env:"SCENEDIT_QUEUE_SIZE"    envDefault:"64"`
	Debug        bool   `env:"SCENEDIT_DEBUG"`
	LogPrefix    string `env:"SCENEDIT_LOG_PREFIX"    envDefault:"scenedit"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		HistoryLimit: DefaultHistoryLimit,
		QueueSize:    DefaultQueueSize,
		LogPrefix:    DefaultLogPrefix,
	}
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize()
}

// LoadConfigFrom reads the configuration from vars instead of the process environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	if c.HistoryLimit < 0 {
		return Config{}, fmt.Errorf("%w: history limit %d is negative", ErrInvalidConfig, c.HistoryLimit)
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	return c, nil
}
