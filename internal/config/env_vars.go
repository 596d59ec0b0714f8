package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	apiBaseURLVar = "RENTEASE_API_URL"
	appNameVar    = "APP_NAME"
	folderEnvVar  = "RENTEASE_DATA_FOLDER"
)

func init() {
	// Best effort: a missing .env just means plain environment variables.
	_ = godotenv.Load()
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://127.0.0.1:5000")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Rentease")
}

func (EnvVars) GetDataFolder() string {
	if folder := os.Getenv(folderEnvVar); folder != "" {
		return folder
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "" // no durable storage available; session runs in-memory
	}
	return filepath.Join(home, ".rentease")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
