package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"pulseboard/internal/notion"
	"pulseboard/internal/snapshot"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AuthConfig holds the session-gate settings. Empty credentials leave the
// gate unconfigured; the login endpoint reports that at first use.
type AuthConfig struct {
	Username string
	Password string
	Secret   string
}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Notion     notion.Config
	Databases  snapshot.Databases
	ListenAddr string
	Auth       AuthConfig
	LogDir     string
}

// Load loads the configuration from .env files and environment variables.
// The API token and database identifiers are required but deliberately not
// validated here: their absence surfaces as an error on the first query.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority
	// for deployed binaries)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		if exeDir != "" {
			logDir = filepath.Join(exeDir, "logs")
		} else {
			logDir = "logs"
		}
	}

	delayMs, _ := strconv.Atoi(getEnv("NOTION_REQUEST_DELAY_MS", "350"))

	cfg := &AppConfig{
		Notion: notion.Config{
			Token:        getEnv("NOTION_API_KEY", ""),
			RequestDelay: time.Duration(delayMs) * time.Millisecond,
		},
		Databases: snapshot.Databases{
			Projects: getEnv("NOTION_DATABASE_PROJECTS", ""),
			Tasks:    getEnv("NOTION_DATABASE_TASKS", ""),
			Sprints:  getEnv("NOTION_DATABASE_SPRINTS", ""),
		},
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		Auth: AuthConfig{
			Username: getEnv("LOGIN_USERNAME", ""),
			Password: getEnv("LOGIN_PASSWORD", ""),
			Secret:   getEnv("AUTH_SECRET", ""),
		},
		LogDir: logDir,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
