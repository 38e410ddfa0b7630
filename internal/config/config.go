package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"kanagawa/internal/engine"
)

// Config is the application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Game    GameConfig    `mapstructure:"game"`
}

// CatalogConfig selects where cards and diplomas are read from. An empty Dir means the
// catalog built into the binary.
type CatalogConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig configures the zap logger. Output is a zap output path; the terminal UI
// owns stdout, so the default is a file.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// GameConfig overrides the rule constants. Seed 0 picks a random seed.
type GameConfig struct {
	Seed          uint64 `mapstructure:"seed"`
	MaxRounds     int    `mapstructure:"max_rounds"`
	UVGoal        int    `mapstructure:"uv_goal"`
	StartingPens  int    `mapstructure:"starting_pens"`
	MaxExtraDeals int    `mapstructure:"max_extra_deals"`
}

// Engine converts the rule overrides to an engine.GameConfig.
func (c GameConfig) Engine() engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.MaxRounds = c.MaxRounds
	cfg.UVGoal = c.UVGoal
	cfg.StartingPens = c.StartingPens
	cfg.MaxExtraDeals = c.MaxExtraDeals
	return cfg
}

// Load reads configuration from defaults, an optional YAML file and KANAGAWA_*
// environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := engine.DefaultConfig()
	v.SetDefault("catalog.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "kanagawa.log")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_rounds", def.MaxRounds)
	v.SetDefault("game.uv_goal", def.UVGoal)
	v.SetDefault("game.starting_pens", def.StartingPens)
	v.SetDefault("game.max_extra_deals", def.MaxExtraDeals)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("kanagawa")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("KANAGAWA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the engine cannot play with.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid config: log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Log.Output == "" {
		return fmt.Errorf("invalid config: log.output must not be empty")
	}
	if c.Game.MaxRounds < 1 {
		return fmt.Errorf("invalid config: game.max_rounds must be positive")
	}
	if c.Game.UVGoal < 1 {
		return fmt.Errorf("invalid config: game.uv_goal must be positive")
	}
	if c.Game.StartingPens < 0 {
		return fmt.Errorf("invalid config: game.starting_pens must not be negative")
	}
	if c.Game.MaxExtraDeals < 0 {
		return fmt.Errorf("invalid config: game.max_extra_deals must not be negative")
	}
	return nil
}
