package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	DatabaseMaxConns int

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float64

	// Hosted document-extraction API (optional; local extractors are the fallback).
	UnstructuredAPIURL string
	UnstructuredAPIKey string

	MaxFileSizeMB     int
	ProcessingTimeout int // seconds

	Debug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseMaxConns:   getEnvInt("DATABASE_MAX_CONNS", 10),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:          getEnv("JWT_ISSUER", "resume-parser"),
		JWTTTLMinutes:      getEnvInt("JWT_TTL_MINUTES", 60),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIMaxTokens:    getEnvInt("OPENAI_MAX_TOKENS", 4000),
		OpenAITemperature:  getEnvFloat("OPENAI_TEMPERATURE", 0.1),
		UnstructuredAPIURL: os.Getenv("UNSTRUCTURED_API_URL"),
		UnstructuredAPIKey: os.Getenv("UNSTRUCTURED_API_KEY"),
		MaxFileSizeMB:      getEnvInt("MAX_FILE_SIZE_MB", 10),
		ProcessingTimeout:  getEnvInt("PROCESSING_TIMEOUT_SECONDS", 120),
		Debug:              getEnvBool("DEBUG", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
