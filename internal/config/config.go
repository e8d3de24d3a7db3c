package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// defaultOrigins matches the hosts the prototype frontend is served from
// during local development.
const defaultOrigins = "http://localhost:5000,http://127.0.0.1:5000,http://localhost:5500,http://127.0.0.1:5500,http://localhost:3000"

// Load reads configuration from environment variables and .env file.
// Everything has a sensible default; the prototype must start with an
// empty environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		FrontendDir: getEnv("FRONTEND_DIR", ""),
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("CORS_ORIGINS", defaultOrigins)),
		},
	}
	return cfg
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
