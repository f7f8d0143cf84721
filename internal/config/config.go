package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Frontends selectable through mode.
const (
	ModeWeb = "web"
	ModeTUI = "tui"
)

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Config is the application configuration.
type Config struct {
	Mode      string `yaml:"mode" env:"TTT_MODE" env-default:"web"`
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TTT_LOG_FORMAT" env-default:"console"`
	LogFile   string `yaml:"log-file" env:"TTT_LOG_FILE"`
	HTTP      HTTP   `yaml:"http"`
}

// HTTP configures the web frontend and its session sweeper.
type HTTP struct {
	Addr          string        `yaml:"addr" env:"TTT_HTTP_ADDR" env-default:":8080"`
	SessionTTL    time.Duration `yaml:"session-ttl" env:"TTT_SESSION_TTL" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"TTT_SWEEP_INTERVAL" env-default:"1m"`
}

// Load reads path, falling back to environment and defaults when the file
// does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - like Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Validate checks values that cleanenv cannot constrain by type.
func (that *Config) Validate() error {
	switch that.Mode {
	case ModeWeb, ModeTUI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}
	if that.HTTP.SessionTTL <= 0 {
		return fmt.Errorf("%w: session-ttl %s", ErrInvalidDuration, that.HTTP.SessionTTL)
	}
	if that.HTTP.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep-interval %s", ErrInvalidDuration, that.HTTP.SweepInterval)
	}
	return nil
}
