// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the migration needs to reach both stores. It is
// read once at startup and treated as immutable afterwards.
type Config struct {
	// FirebaseProjectID identifies the source Firestore project. Credentials
	// are resolved by the Google SDK (GOOGLE_APPLICATION_CREDENTIALS or
	// ambient service account).
	FirebaseProjectID string

	// DatabaseURL is the destination Postgres connection URL, e.g. the
	// Supabase connection string with the service-role credential.
	DatabaseURL string

	// SourceCollection is the Firestore collection holding user documents.
	SourceCollection string

	// UsersPerMinute caps how many users are processed per minute, bounding
	// the request rate against the destination.
	UsersPerMinute int
}

// Load reads the configuration from the environment. All missing required
// variables are reported in a single error so the operator can fix them in
// one pass.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.FirebaseProjectID = os.Getenv("FIREBASE_PROJECT_ID")
	if cfg.FirebaseProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.SourceCollection = getEnvString("SOURCE_COLLECTION", "users")
	cfg.UsersPerMinute = getEnvInt("MIGRATE_USERS_PER_MINUTE", 30)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
