package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL     string
	SupabaseAnonKey string
	OAuthRedirectTo string
	HTTPTimeoutSecs int
	LogLevel        string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		SupabaseURL:     getEnv("SUPABASE_URL", "http://localhost:54321"),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		OAuthRedirectTo: getEnv("OAUTH_REDIRECT_TO", "planner://auth-callback"),
		HTTPTimeoutSecs: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}
