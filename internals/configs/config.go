package configs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to the components that need it.
// Business logic never reads the environment directly.
type Config struct {
	Port      string
	JWTSecret string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	UploadDir    string
	AllowOrigins []string
}

// Load reads .env (when present) and assembles the Config.
func Load() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	}

	cfg := &Config{
		Port:       GetEnv("PORT", "3000"),
		JWTSecret:  GetEnv("JWT_SECRET"),
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),
		UploadDir:  GetEnv("UPLOAD_DIR", "uploads"),
	}

	origins := GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
	return cfg
}

// DSN builds the Postgres connection string. statement_timeout keeps runaway
// queries aligned with the per-request deadline.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolhub&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
