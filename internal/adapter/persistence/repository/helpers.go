package repository

import "os"

// getenvDefault backs the *_TABLE knobs (REQUESTS_TABLE, PAYMENTS_TABLE,
// CATEGORIES_TABLE, EMPLOYEES_TABLE) shared by the repositories.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
