package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config returns the value of an environment variable, loading .env on the
// first call so local runs pick it up without exporting anything.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

// ConfigOr returns the value of key, or fallback when it is unset or empty.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

// ConfigBool treats "true", "1" and "yes" (case-insensitive) as true.
func ConfigBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(Config(key))) {
	case "true", "1", "yes":
		return true
	}
	return false
}
