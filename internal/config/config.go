package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"taskboard/pkg/db"
	"taskboard/pkg/helpers"
)

type Config struct {
	ServiceName string
	GRPCPort    string
	HTTPPort    string

	Database db.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Location decides which calendar day "today" is.
	Location *time.Location
}

func Load() (*Config, error) {
	cfg := &Config{
		ServiceName:   getEnv("SERVICE_NAME", "calendar-service"),
		GRPCPort:      getEnv("GRPC_PORT", "50059"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Database: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_DATABASE", "taskboard"),
		},
	}

	var err error
	if cfg.Database.Port, err = getEnvInt("DB_PORT", 3306); err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return nil, err
	}
	if cfg.Database.MaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	cfg.Location = helpers.IranLocation()
	if name := os.Getenv("CALENDAR_TIMEZONE"); name != "" {
		if cfg.Location, err = time.LoadLocation(name); err != nil {
			return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", name, err)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
