package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBPath       string
	GeminiAPIKey string
	GeminiModel  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:         get("PORT", "5000"),
		DBPath:       get("DB_PATH", "pestplan.db"),
		GeminiAPIKey: get("GOOGLE_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-1.5-flash"),
	}
	log.Printf("[cfg] port=%s db=%s model=%s key_set=%v", cfg.Port, cfg.DBPath, cfg.GeminiModel, cfg.GeminiAPIKey != "")
	return cfg
}
