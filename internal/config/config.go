package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	// Optional env vars default to empty; the wiring in main decides what an
	// empty value disables (remote DB, pubsub, Slack).
	getEnvOptional := func(key string) string {
		return os.Getenv(key)
	}

	corsOrigins := getEnvOptional("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		CORSOrigins:   strings.Split(corsOrigins, ","),
		Turso: TursoConfig{
			PrimaryURL: getEnvOptional("TURSO_PRIMARY_URL"),
			AuthToken:  getEnvOptional("TURSO_AUTH_TOKEN"),
		},
		Slack: SlackConfig{
			Token:     getEnvOptional("SLACK_BOT_TOKEN"),
			ChannelID: getEnvOptional("SLACK_CHANNEL_ID"),
		},
		ProjectID: getEnvOptional("GCP_PROJECT"),
	}
	return cfg
}
