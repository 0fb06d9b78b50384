package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	defaultServerAddress  = "http://localhost:8080"
	defaultEnv            = "local"
	defaultRequestTimeout = 30
)

const (
	KeyEnv            = "APP_ENV"
	KeyServerAddress  = "SERVER_ADDRESS"
	KeyLogLevel       = "LOG_LEVEL"
	KeyRequestTimeout = "REQUEST_TIMEOUT_SECONDS"
)

type Config struct {
	Env            string
	ServerAddress  string
	LogLevel       string
	RequestTimeout time.Duration
}

// Load читает конфигурацию клиента: .env, окружение, файл конфигурации
// (если задан через v.SetConfigFile) и привязанные флаги.
func Load(v *viper.Viper) (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Println("failed to load .env file:", err)
		}
	}

	v.SetDefault(KeyEnv, defaultEnv)
	v.SetDefault(KeyServerAddress, defaultServerAddress)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyRequestTimeout, defaultRequestTimeout)
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	config := &Config{
		Env:            v.GetString(KeyEnv),
		ServerAddress:  v.GetString(KeyServerAddress),
		LogLevel:       v.GetString(KeyLogLevel),
		RequestTimeout: time.Duration(v.GetInt(KeyRequestTimeout)) * time.Second,
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("%s must not be empty", KeyServerAddress)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyRequestTimeout)
	}
	return nil
}
