package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	EngineName      string `mapstructure:"engine_name"`
	EngineAuthor    string `mapstructure:"engine_author"`
	DefaultDepth    int    `mapstructure:"default_depth"`
	MaxDepth        int    `mapstructure:"max_depth"`
	PawnAdvancement bool   `mapstructure:"pawn_advancement"`
	LogLevel        string `mapstructure:"log_level"`
	LogFormat       string `mapstructure:"log_format"`
	LogFile         string `mapstructure:"log_file"`
}

var defaults = map[string]any{
	"engine_name":      "Refute 0.1",
	"engine_author":    "the Refute authors",
	"default_depth":    3,
	"max_depth":        16,
	"pawn_advancement": true,
	"log_level":        "info",
	"log_format":       "console",
	"log_file":         "",
}

// Load reads cfgPath (any format viper understands) when non-empty, then
// applies REFUTE_* environment overrides on top of the defaults.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("REFUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max_depth %d must be positive", ErrInvalidConfig, c.MaxDepth)
	}
	if c.DefaultDepth < 1 || c.DefaultDepth > c.MaxDepth {
		return fmt.Errorf("%w: default_depth %d outside 1..%d", ErrInvalidConfig, c.DefaultDepth, c.MaxDepth)
	}
	if strings.TrimSpace(c.EngineName) == "" {
		return fmt.Errorf("%w: engine_name is empty", ErrInvalidConfig)
	}
	return nil
}
