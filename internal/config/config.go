package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Addr    string `mapstructure:"addr"`
	TempDir string `mapstructure:"temp_dir"`
}

type ProtectionCfg struct {
	DefaultLevel string `mapstructure:"default_level"`
}

type LoggingCfg struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server     ServerCfg     `mapstructure:"server"`
	Protection ProtectionCfg `mapstructure:"protection"`
	Logging    LoggingCfg    `mapstructure:"logging"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.temp_dir", os.TempDir())
	v.SetDefault("protection.default_level", "medium")
	v.SetDefault("logging.level", "info")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{
			Server:     ServerCfg{Addr: ":5000", TempDir: os.TempDir()},
			Protection: ProtectionCfg{DefaultLevel: "medium"},
			Logging:    LoggingCfg{Level: "info"},
		}
	}
	return cfg
}
