package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
// Storage and auth settings are optional at startup: endpoints that
// need a missing one answer 503 instead of the process refusing to
// boot.
type Config struct {
	Port               string
	MongoURI           string
	AdminSecret        string
	CloudinaryURL      string
	CorsAllowedOrigins []string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGODB_URI", ""),
		AdminSecret:        getEnv("ADMIN_SECRET", ""),
		CloudinaryURL:      getEnv("CLOUDINARY_URL", ""),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
