package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

// EnvPrefix prefixes every environment override, e.g. BRIDGE_SEED.
const EnvPrefix = "BRIDGE"

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config holds the settings for a session of games.
type Config struct {
	Players      []string  `mapstructure:"players"`
	Seed         uint64    `mapstructure:"seed"` // 0 picks a random seed
	MinHandValue int       `mapstructure:"min_hand_value"`
	MaxRedeals   int       `mapstructure:"max_redeals"`
	MaxAttempts  int       `mapstructure:"max_attempts"`
	Games        int       `mapstructure:"games"`
	HumanSeat    int       `mapstructure:"human_seat"` // 1-based
	Verbose      bool      `mapstructure:"verbose"`
	Log          LogConfig `mapstructure:"log"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("players", []string{"Alice", "Bob", "Charlie", "Diana"})
	v.SetDefault("seed", 0)
	v.SetDefault("min_hand_value", 5)
	v.SetDefault("max_redeals", 1000)
	v.SetDefault("max_attempts", 3)
	v.SetDefault("games", 1)
	v.SetDefault("human_seat", 1)
	v.SetDefault("verbose", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads an optional config file plus BRIDGE_* environment overrides.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if len(c.Players) != engine.PlayerCount {
		return fmt.Errorf("config: expected %d players, got %d", engine.PlayerCount, len(c.Players))
	}
	if c.MaxRedeals <= 0 {
		return fmt.Errorf("config: max_redeals must be positive, got %d", c.MaxRedeals)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("config: max_attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.Games <= 0 {
		return fmt.Errorf("config: games must be positive, got %d", c.Games)
	}
	if c.HumanSeat < 1 || c.HumanSeat > engine.PlayerCount {
		return fmt.Errorf("config: human_seat must be 1-%d, got %d", engine.PlayerCount, c.HumanSeat)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}
