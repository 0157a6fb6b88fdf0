package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port               string
	DatabaseURL        string
	RedisURL           string
	AllowedOrigins     string  // Comma-separated list of CORS origins
	JWTSecret          string  // Secret key for JWT token signing
	JWTTTLHours        int     // JWT token expiration time in hours
	BcryptCost         int     // Work factor for password hashing
	RateLimitRPS       float64 // Rate limit for public news listing (requests per second)
	RateLimitBurst     int     // Burst size for the listing limiter
	RateLimitAuthRPS   float64 // Rate limit for register/login (stricter)
	RateLimitAuthBurst int     // Burst size for register/login
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:               getEnv("PORT", "4000"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTLHours:        getEnvInt("JWT_TTL_HOURS", 1),
		BcryptCost:         getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
