package config

import "os"

// GetEnv returns the value of an environment variable, or fallback if unset.
func GetEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// JWTSecret returns the signing key for bearer tokens.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "fridgy-dev-secret"))
}
