package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBPath         string
	AgroAPIKey     string
	AgroBaseURL    string
	CacheTTLSec    int
	LogLevel       string
	AllowedOrigins []string
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
	ttl, err := strconv.Atoi(get("CACHE_TTL_SEC", "3600"))
	if err != nil || ttl < 0 {
		ttl = 3600
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		DBPath:         get("DB_PATH", "cropsense.db"),
		AgroAPIKey:     get("AGRO_API_KEY", ""),
		AgroBaseURL:    get("AGRO_BASE_URL", "http://api.agromonitoring.com/data/2.5"),
		CacheTTLSec:    ttl,
		LogLevel:       get("LOG_LEVEL", "info"),
		AllowedOrigins: strings.Split(get("ALLOWED_ORIGINS", "*"), ","),
	}
	log.Printf("[cfg] port=%s db=%s cache_ttl=%ds", cfg.Port, cfg.DBPath, cfg.CacheTTLSec)
	return cfg
}
