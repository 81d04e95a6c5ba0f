package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the server.
type Config struct {
	Port        string
	Environment string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	JWTTTL      time.Duration
	SettingsTTL time.Duration

	CampaignInterval time.Duration

	RateLimit       int
	RateLimitWindow time.Duration

	// InfantsCountTowardPrice controls whether infants are counted in the
	// per-guest price multiplier.
	InfantsCountTowardPrice bool

	AllowedOrigins []string
}

// Load reads configuration from the environment, after loading .env if one
// is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:        GetEnv("PORT", "8080"),
		Environment: GetEnv("ENVIRONMENT", "development"),

		MongoURI: GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  GetEnv("MONGO_DB", "tour_platform"),

		RedisAddr:     GetEnv("REDIS_ADDR", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvInt("REDIS_DB", 0),

		JWTSecret:   GetEnv("JWT_SECRET", "change-me-in-production"),
		JWTTTL:      GetEnvDuration("JWT_TTL", 24*time.Hour),
		SettingsTTL: GetEnvDuration("SETTINGS_CACHE_TTL", 30*time.Second),

		CampaignInterval: GetEnvDuration("CAMPAIGN_APPLY_INTERVAL", time.Hour),

		RateLimit:       GetEnvInt("RATE_LIMIT", 100),
		RateLimitWindow: GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		InfantsCountTowardPrice: GetEnvBool("INFANTS_COUNT_TOWARD_PRICE", true),

		AllowedOrigins: []string{GetEnv("ALLOWED_ORIGIN", "*")},
	}
}

// GetEnv returns the value of an environment variable or a default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns an integer environment variable or a default.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// GetEnvBool returns a boolean environment variable or a default.
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

// GetEnvDuration returns a duration environment variable or a default.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
