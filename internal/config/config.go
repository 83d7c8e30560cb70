// Package config reads the runtime settings of the ftracker binary.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings of a single ftracker run.
type Config struct {
	Verbose  bool // log every processed package to stderr
	LogFlags int
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	return Config{
		Verbose:  getBoolEnv("FTRACKER_VERBOSE", false),
		LogFlags: getIntEnv("FTRACKER_LOG_FLAGS", log.LstdFlags),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if parsed, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return parsed
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if parsed, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return parsed
	}
	return fallback
}
