package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress        string        `mapstructure:"SERVER_ADDRESS"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
	FetchTimeout         time.Duration `mapstructure:"FETCH_TIMEOUT"`
	MaxConcurrentFetches int           `mapstructure:"MAX_CONCURRENT_FETCHES"`
	LinkLabel            string        `mapstructure:"LINK_LABEL"`
	FilterHeading        string        `mapstructure:"FILTER_HEADING"`
	ContainerClass       string        `mapstructure:"CONTAINER_CLASS"`
	MaxConfigBytes       int64         `mapstructure:"MAX_CONFIG_BYTES"`
}

var keys = []string{
	"SERVER_ADDRESS",
	"DB_SOURCE",
	"LOG_LEVEL",
	"FETCH_TIMEOUT",
	"MAX_CONCURRENT_FETCHES",
	"LINK_LABEL",
	"FILTER_HEADING",
	"CONTAINER_CLASS",
	"MAX_CONFIG_BYTES",
}

// LoadConfig reads app.env from path if present. Environment variables
// always win over the file.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FETCH_TIMEOUT", 10*time.Second)
	v.SetDefault("MAX_CONCURRENT_FETCHES", 4)
	v.SetDefault("LINK_LABEL", "詳細を見る")
	v.SetDefault("FILTER_HEADING", "カテゴリ")
	v.SetDefault("CONTAINER_CLASS", "gg-map")
	v.SetDefault("MAX_CONFIG_BYTES", 2<<20)

	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("config: failed to bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if cfg.MaxConcurrentFetches < 1 {
		cfg.MaxConcurrentFetches = 1
	}
	if cfg.MaxConfigBytes < 1 {
		cfg.MaxConfigBytes = 2 << 20
	}
	return cfg, nil
}
