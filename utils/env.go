package utils

import (
	"os"
	"strconv"
	"time"
)

// Environment accessors. A missing or unparsable variable falls back to
// the supplied default rather than failing startup.

func GetEnvAsString(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func GetEnvAsInt(key string, defaultVal int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func GetEnvAsInt64(key string, defaultVal int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultVal
	}
	return parsed
}
