package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridroute/adjacency"
	"github.com/katalvlaran/gridroute/route"
)

// Config is the merged configuration: defaults < config file < env < flags.
type Config struct {
	Diagonal       bool      `mapstructure:"diagonal"`
	PassByWormhole bool      `mapstructure:"pass_by_wormhole"`
	MaxCost        int64     `mapstructure:"max_cost"` // 0 means no cap
	Color          bool      `mapstructure:"color"`
	Log            LogConfig `mapstructure:"log"`
}

// LogConfig configures the zap logger and its optional rotated file sink.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"log-file":         "log.file",
	"color":            "color",
	"diagonal":         "diagonal",
	"pass-by-wormhole": "pass_by_wormhole",
	"max-cost":         "max_cost",
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	defaults := adjacency.DefaultOptions()
	v.SetDefault("diagonal", defaults.AllowDiagonal)
	v.SetDefault("pass_by_wormhole", defaults.AllowPassByWormhole)
	v.SetDefault("max_cost", 0)
	v.SetDefault("color", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)

	v.SetEnvPrefix("GRIDROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.MaxCost < 0 {
		return Config{}, fmt.Errorf("max_cost must be non-negative, got %d", c.MaxCost)
	}
	return c, nil
}

// costCap returns the route cost cap, route.Unreachable when none is set.
func (c Config) costCap() int64 {
	if c.MaxCost == 0 {
		return route.Unreachable
	}
	return c.MaxCost
}

// options turns the configured movement rules into adjacency options.
func (c Config) options() []adjacency.Option {
	return []adjacency.Option{
		adjacency.WithDiagonal(c.Diagonal),
		adjacency.WithPassByWormhole(c.PassByWormhole),
	}
}
