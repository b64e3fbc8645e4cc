package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPServerAddress   string `mapstructure:"HTTP_SERVER_ADDRESS"`
	APIToken            string `mapstructure:"API_TOKEN"`
	SQLitePath          string `mapstructure:"SQLITE_PATH"`
	Messenger           string `mapstructure:"MESSENGER"`
	TelegramAPIEndpoint string `mapstructure:"TELEGRAM_API_ENDPOINT"`
	WatchBackoffBaseMs  int    `mapstructure:"WATCH_BACKOFF_BASE_DELAY_MS"`
	WatchReloadAttempts int    `mapstructure:"WATCH_RELOAD_ATTEMPTS"`
	OtelEndpoint        string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelInsecure        bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OtelServiceName     string `mapstructure:"OTEL_SERVICE_NAME"`
}

var cfg *Config

func NewConfig(path string) (*Config, error) {
	relativeUrl, err := GetBasePath(path)
	if err != nil {
		return nil, fmt.Errorf("error getting base path: %v", err)
	}

	vip := viper.New()
	vip.SetConfigType("env")
	vip.SetConfigName(".env")
	vip.AddConfigPath(relativeUrl)
	vip.AutomaticEnv()

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	vip.BindEnv("HTTP_SERVER_ADDRESS")
	vip.BindEnv("API_TOKEN")
	vip.BindEnv("SQLITE_PATH")
	vip.BindEnv("MESSENGER")
	vip.BindEnv("TELEGRAM_API_ENDPOINT")
	vip.BindEnv("WATCH_BACKOFF_BASE_DELAY_MS")
	vip.BindEnv("WATCH_RELOAD_ATTEMPTS")
	vip.BindEnv("OTEL_EXPORTER_OTLP_ENDPOINT")
	vip.BindEnv("OTEL_EXPORTER_OTLP_INSECURE")
	vip.BindEnv("OTEL_SERVICE_NAME")

	vip.SetDefault("HTTP_SERVER_ADDRESS", ":8080")
	vip.SetDefault("SQLITE_PATH", "reseller-vault.db")
	vip.SetDefault("MESSENGER", "telegram")
	vip.SetDefault("WATCH_BACKOFF_BASE_DELAY_MS", 200)
	vip.SetDefault("WATCH_RELOAD_ATTEMPTS", 5)
	vip.SetDefault("OTEL_SERVICE_NAME", "reseller-vault")

	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %v", err)
	}

	if !vip.IsSet("otel_exporter_otlp_insecure") {
		cfg.OtelInsecure = false
	}

	return cfg, nil
}

func GetBasePath(path string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return filepath.Join(cwd, path), nil
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			return "", errors.New("go.mod not found")
		}
		cwd = parent
	}
}

func GetConfig() *Config {
	return cfg
}

// SetTestConfig allows tests to set the global config variable directly.
func SetTestConfig(testCfg *Config) {
	cfg = testCfg
}
