package config

import (
	"os"
	"strconv"
	"time"

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

	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	masterSeed, err := strconv.ParseInt(getEnvDefault("MASTER_SEED", "1"), 10, 64)
	if err != nil {
		log.Fatalf("Error: MASTER_SEED must be an integer: %v", err)
	}

	seasonYear, err := strconv.Atoi(getEnvDefault("SEASON_YEAR", strconv.Itoa(time.Now().Year())))
	if err != nil {
		log.Fatalf("Error: SEASON_YEAR must be an integer: %v", err)
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvDefault("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnv("PORT"),
		LeagueCode:    getEnvDefault("LEAGUE_CODE", "ES1"),
		CupCode:       getEnvDefault("CUP_CODE", "COPA"),
		MasterSeed:    masterSeed,
		SeasonYear:    seasonYear,
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN"),
			ChannelID:     getEnv("SLACK_CHANNEL_ID"),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
