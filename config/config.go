package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	Environment           string
	FrontendURL           string
	ModelURL              string
	ModelAPIKey           string
	GoogleFactCheckAPIKey string
	DbUrl                 string
	RedisUrl              string
	AdminToken            string
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:                  getEnvOrDefault("PORT", "8000"),
		Environment:           getEnvOrDefault("ENVIRONMENT", "development"),
		FrontendURL:           getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		ModelURL:              getEnvOrDefault("MODEL_URL", "https://api-inference.huggingface.co/models/distilbert-base-uncased"),
		ModelAPIKey:           os.Getenv("MODEL_API_KEY"),
		GoogleFactCheckAPIKey: os.Getenv("GOOGLE_FACT_CHECK_API_KEY"),
		DbUrl:                 os.Getenv("DB_URL"),
		RedisUrl:              os.Getenv("REDIS_URL"),
		AdminToken:            os.Getenv("ADMIN_TOKEN"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
