// Package config loads service configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCORSOrigins are the local development front ends allowed by default.
const DefaultCORSOrigins = "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001"

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver          string
	DSN             string
	LogLevel        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	Seed            bool
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

// RabbitMQConfig holds event publishing settings. An empty URL disables publishing.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Config holds all configuration.
type Config struct {
	ServiceName    string
	AppPort        string
	AppEnv         string
	LogLevel       string
	Database       DatabaseConfig
	JWT            JWTConfig
	BcryptCost     int
	CORSOrigins    []string
	ProtectedPaths []string
	RabbitMQ       RabbitMQConfig
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "medingen-api")
	v.SetDefault("APP_PORT", ":5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=medingen port=5432 sslmode=disable")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("DB_SEED", false)

	v.SetDefault("JWT_SECRET_KEY", "jwt-secret-string")
	v.SetDefault("JWT_ACCESS_TOKEN_EXPIRES", 600)
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("CORS_ORIGINS", DefaultCORSOrigins)
	v.SetDefault("PROTECTED_PATHS", "")

	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "medingen.events")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServiceName: v.GetString("SERVICE_NAME"),
		AppPort:     v.GetString("APP_PORT"),
		AppEnv:      v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:             v.GetString("DATABASE_URL"),
			LogLevel:        v.GetString("DB_LOG_LEVEL"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			Seed:            v.GetBool("DB_SEED"),
		},
		JWT: JWTConfig{
			Secret:         v.GetString("JWT_SECRET_KEY"),
			AccessTokenTTL: time.Duration(v.GetInt("JWT_ACCESS_TOKEN_EXPIRES")) * time.Second,
		},
		BcryptCost:     v.GetInt("BCRYPT_COST"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		ProtectedPaths: splitList(v.GetString("PROTECTED_PATHS")),
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
	}
}

// splitList parses a comma separated list, dropping blanks.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
