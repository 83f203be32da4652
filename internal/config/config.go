package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds every environment-driven setting of the API.
type Config struct {
	Env           string // "production" enables secure cookies and JSON logs
	Port          string
	MongoURI      string // empty means file-store only
	MongoDatabase string
	JWTSecret     string
	DataDir       string
	ReadOnly      bool // skip all data-file writes
	CORSOrigins   []string
	TextbeltKey   string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv-style lookup.
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		Env:           getenv("APP_ENV"),
		Port:          getenv("API_PORT"),
		MongoURI:      strings.TrimSpace(getenv("MONGODB_URI")),
		MongoDatabase: getenv("MONGODB_DB"),
		JWTSecret:     getenv("JWT_SECRET"),
		DataDir:       getenv("DATA_DIR"),
		TextbeltKey:   getenv("TEXTBELT_API_KEY"),
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "pet24"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if ro, err := strconv.ParseBool(getenv("STORAGE_READ_ONLY")); err == nil {
		cfg.ReadOnly = ro
	}

	for _, o := range strings.Split(getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	return cfg
}

func (c *Config) MongoEnabled() bool {
	return c.MongoURI != ""
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

// DefaultSecret reports whether token signing falls back to the built-in development secret.
func (c *Config) DefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}
