package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GeminiAPIKey  string
	FastModel     string
	AdvancedModel string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey:  mustEnv("GEMINI_API_KEY"),
		FastModel:     getEnv("GEMINI_FAST_MODEL", "gemini-2.5-flash-lite"),
		AdvancedModel: getEnv("GEMINI_ADVANCED_MODEL", "gemini-3-pro-preview"),
	}
}
