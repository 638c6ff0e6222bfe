package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Optimizer OptimizerConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
	// OwnerID is the actor all records are filed under until real
	// authentication exists.
	OwnerID string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type OptimizerConfig struct {
	URL               string
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_OWNER_ID", "demo-user")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "protein_optimizer")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("OPTIMIZER_URL", "https://api.openai.com/v1")
	v.SetDefault("OPTIMIZER_API_KEY", "")
	v.SetDefault("OPTIMIZER_MODEL", "gpt-4o-mini")
	v.SetDefault("OPTIMIZER_TIMEOUT", "30s")
	v.SetDefault("OPTIMIZER_RPS", 2.0)
	v.SetDefault("OPTIMIZER_BURST", 4)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	connLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		connLifetime = 30 * time.Minute
	}
	optimizerTimeout, err := time.ParseDuration(v.GetString("OPTIMIZER_TIMEOUT"))
	if err != nil {
		optimizerTimeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:    v.GetString("SERVER_HOST"),
			Port:    v.GetInt("SERVER_PORT"),
			OwnerID: v.GetString("SERVER_OWNER_ID"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		Optimizer: OptimizerConfig{
			URL:               v.GetString("OPTIMIZER_URL"),
			APIKey:            v.GetString("OPTIMIZER_API_KEY"),
			Model:             v.GetString("OPTIMIZER_MODEL"),
			Timeout:           optimizerTimeout,
			RequestsPerSecond: v.GetFloat64("OPTIMIZER_RPS"),
			Burst:             v.GetInt("OPTIMIZER_BURST"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
