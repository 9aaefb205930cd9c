package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AdminJWTSecret string
	GeminiAPIKey   string
	RedisAddr      string
	RedisPassword  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env file not found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	AdminJWTSecret = GetEnv("ADMIN_JWT_SECRET")
	GeminiAPIKey = GetEnv("GEMINI_API_KEY")
	RedisAddr = GetEnv("REDIS_ADDR")
	RedisPassword = GetEnv("REDIS_PASSWORD")

	if AdminJWTSecret == "" {
		log.Println("❌ ADMIN_JWT_SECRET not set, maintenance routes will reject all requests!")
	}
	if GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set, assistant routes disabled")
	}
	if RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR not set, falling back to in-memory record cache")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
