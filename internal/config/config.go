package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Host     string
	Broker   BrokerConfig
	Database DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c *DatabaseConfig) ConnectionString() string {
	return "host=" + c.Host +
		" port=" + c.Port +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" sslmode=" + c.SSLMode
}

type BrokerConfig struct {
	URL      string
	ClientID string
	Username string
	Password string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "3001"),
		Host: getEnv("HOST", "0.0.0.0"),
		Broker: BrokerConfig{
			URL:      getEnv("BROKER_URL", "tcp://localhost:1883"),
			ClientID: getEnv("BROKER_CLIENT_ID", "zoom-gateway-001"),
			Username: getEnv("BROKER_USERNAME", ""),
			Password: getEnv("BROKER_PASSWORD", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "gateway"),
			Password: getEnv("DATABASE_PASSWORD", "gateway"),
			Name:     getEnv("DATABASE_NAME", "gateway"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
