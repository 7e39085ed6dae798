package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	Conn ConnConfig
	Log  LogConfig
}

// ConnConfig holds the simulated connection settings.
type ConnConfig struct {
	Names        []string
	ConnectDelay time.Duration `mapstructure:"connect_delay"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix TACT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("conn.names", []string{"cameras", "broker", "recorder"})
	v.SetDefault("conn.connect_delay", "2s")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TACT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tact"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TACT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Conn.ConnectDelay <= 0 {
		return Config{}, fmt.Errorf("conn.connect_delay must be positive, got %s", c.Conn.ConnectDelay)
	}
	if len(c.Conn.Names) == 0 {
		return Config{}, fmt.Errorf("conn.names must list at least one connection")
	}
	return c, nil
}
