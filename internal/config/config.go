package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	TLSCert         string
	TLSKey          string
	LogLevel        string
	RateLimit       float64 // requests per second per client IP
	RateBurst       int
	ShutdownTimeout time.Duration
}

// Load reads .env when present, then the environment. A missing .env is not
// an error; the returned bool tells the caller whether one was loaded.
func Load() (Config, bool) {
	loaded := godotenv.Load() == nil
	return FromEnv(), loaded
}

func FromEnv() Config {
	return Config{
		Addr:            getEnv("ADDR", ":8080"),
		TLSCert:         os.Getenv("TLS_CERT"),
		TLSKey:          os.Getenv("TLS_KEY"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RateLimit:       getFloat("RATE_LIMIT", 5),
		RateBurst:       getInt("RATE_BURST", 10),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
