// config/config.go
package config

import (
	"fmt"
	"os"
)

// Config holds the infrastructure settings the agency service needs.
// Everything comes from the environment; there is no config file.
type Config struct {
	// Database (PostgreSQL)
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string
	// Kafka
	KafkaBroker string
	KafkaTopic  string
	// RabbitMQ (alert delivery)
	RabbitUser     string
	RabbitPassword string
	RabbitHost     string
	RabbitPort     string
	AlertQueue     string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  os.Getenv("KAFKA_TOPIC"),

		RabbitUser:     os.Getenv("RABBITMQ_USER"),
		RabbitPassword: os.Getenv("RABBITMQ_PASSWORD"),
		RabbitHost:     os.Getenv("RABBITMQ_HOST"),
		RabbitPort:     os.Getenv("RABBITMQ_PORT"),
		AlertQueue:     getenvDefault("ALERT_QUEUE", "agency.alerts"),
	}
}

// GetDBURL formats the config into a PostgreSQL connection string.
func (c *Config) GetDBURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRabbitMQURL formats the config into an AMQP connection string,
// defaulting host and port so a missing env var doesn't produce a
// malformed URL.
func (c *Config) GetRabbitMQURL() string {
	host := c.RabbitHost
	if host == "" {
		host = "localhost"
	}
	port := c.RabbitPort
	if port == "" {
		port = "5672"
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitUser, c.RabbitPassword, host, port)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
