package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every tunable the service reads from the environment.
type Config struct {
	// Source selects the backing dataset format: "csv" or "sqlite".
	Source string

	// CSVURL is the published-sheet export URL for the CSV source.
	CSVURL string

	// SQLitePaths are the candidate database file paths, tried in order.
	SQLitePaths []string

	HTTPAddr    string
	MetricsPort string

	// PageSize is the main grid page size; NichePageSize bounds the
	// niche carousels.
	PageSize      int
	NichePageSize int
}

// Load reads .env (when present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Source:        getEnv("CATALOG_SOURCE", "csv"),
		CSVURL:        getEnv("CATALOG_CSV_URL", ""),
		SQLitePaths:   splitPaths(getEnv("CATALOG_SQLITE_PATHS", "data/produtos.db,produtos.db")),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
		PageSize:      getEnvInt("CATALOG_PAGE_SIZE", 12),
		NichePageSize: getEnvInt("CATALOG_NICHE_PAGE_SIZE", 8),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return d
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
