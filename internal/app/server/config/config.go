package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Ключи viper. Совпадают с именами переменных окружения.
const (
	KeyEnv            = "APP_ENV"
	KeyRunAddress     = "RUN_ADDRESS"
	KeyBackend        = "STORAGE_BACKEND"
	KeySQLitePath     = "SQLITE_PATH"
	KeyDatabaseURI    = "DATABASE_URI"
	KeyMigrateOnStart = "MIGRATE_ON_START"
	KeyLogLevel       = "LOG_LEVEL"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	Backend        string
	SQLitePath     string
	DatabaseURI    string
	MigrateOnStart bool
}

type Server struct {
	RunAddress string
}

type Logger struct {
	LogLevel string
}

// SetDefaults регистрирует значения по умолчанию в v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEnv, EnvLocal)
	v.SetDefault(KeyRunAddress, ":8080")
	v.SetDefault(KeyBackend, BackendSQLite)
	v.SetDefault(KeySQLitePath, "markets.db")
	v.SetDefault(KeyMigrateOnStart, true)
	v.SetDefault(KeyLogLevel, "")
}

// Load читает конфигурацию из .env, окружения и уже привязанных к v флагов.
func Load(v *viper.Viper) (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Println("failed to load .env file:", err)
		}
	}

	SetDefaults(v)
	v.AutomaticEnv()

	config := &Config{
		Env: v.GetString(KeyEnv),
		DB: DB{
			Backend:        v.GetString(KeyBackend),
			SQLitePath:     v.GetString(KeySQLitePath),
			DatabaseURI:    v.GetString(KeyDatabaseURI),
			MigrateOnStart: v.GetBool(KeyMigrateOnStart),
		},
		Server: Server{RunAddress: normalizeAddress(v.GetString(KeyRunAddress))},
		Logger: Logger{LogLevel: v.GetString(KeyLogLevel)},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// MustLoad - Load с глобальным viper, паникует при ошибке.
func MustLoad() *Config {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalln(err)
	}
	return cfg
}

// normalizeAddress превращает голый номер порта ("8080") в адрес ":8080".
func normalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if _, err := strconv.ParseUint(addr, 10, 16); err == nil {
		return ":" + addr
	}
	return addr
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown %s %q", KeyEnv, c.Env)
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("%s must not be empty", KeyRunAddress)
	}
	switch c.DB.Backend {
	case BackendSQLite:
		if c.DB.SQLitePath == "" {
			return fmt.Errorf("%s must not be empty for sqlite backend", KeySQLitePath)
		}
	case BackendPostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("%s must not be empty for postgres backend", KeyDatabaseURI)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown %s %q (supported: sqlite, postgres, memory)", KeyBackend, c.DB.Backend)
	}
	return nil
}
