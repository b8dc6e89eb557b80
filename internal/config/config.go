package config

import (
	"fmt"
	"os"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL    string
	ServerAddr     string
	PDFRendererURL string
}

// Load reads configuration from environment.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "realty_hub")
		pass := getenv("POSTGRES_PASSWORD", "realty_hub_pass")
		db := getenv("POSTGRES_DB", "realty_hub")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}

	return &Config{
		DatabaseURL:    dsn,
		ServerAddr:     getenv("SERVER_ADDR", "0.0.0.0:8080"),
		PDFRendererURL: os.Getenv("PDF_RENDERER_URL"),
	}, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
