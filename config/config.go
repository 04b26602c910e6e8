package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// API Configuration
	TMDBAPIKey     string
	TMDBBaseURL    string
	ArchiveBaseURL string

	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Object Storage Configuration
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// Rate Limiting Configuration
	RateLimitRPS   float64
	RateLimitBurst int

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: env file %s not found, using process environment", envFile)
	}

	cfg := &Config{
		// API Configuration
		TMDBAPIKey:     getEnvOrDefault("TMDB_API_KEY", ""),
		TMDBBaseURL:    getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		ArchiveBaseURL: getEnvOrDefault("ARCHIVE_BASE_URL", "https://archive.org/advancedsearch.php"),

		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "the_movie_site"),

		// Security Configuration
		JWTSecret:       getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:  getDurationOrDefault("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: getDurationOrDefault("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		// Object Storage Configuration
		MinioEndpoint:  getEnvOrDefault("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnvOrDefault("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnvOrDefault("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnvOrDefault("MINIO_BUCKET", "avatars"),
		MinioUseSSL:    getEnvOrDefault("MINIO_USE_SSL", "false") == "true",

		// Rate Limiting Configuration
		RateLimitRPS:   getFloatOrDefault("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getIntOrDefault("RATE_LIMIT_BURST", 20),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s, using default", key)
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Warning: invalid integer for %s, using default", key)
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Warning: invalid number for %s, using default", key)
	}
	return defaultValue
}
