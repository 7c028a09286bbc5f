package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataDir       string
	DataFile      string
	DataDelimiter string
	DataSource    string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	ListingsTable    string

	MaxRetries     int
	MaxConcurrency int
	ClassifyMode   string

	QueryRegion    string
	DealRegion     string
	QueryBedrooms  int
	QueryBathrooms int
	QueryMaxBudget float64
	Queries        []string
	PreviewRows    int

	Debug bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataDir:       getEnv("DATA_DIR", "real_estate/load_data/data"),
		DataFile:      getEnv("DATA_FILE", "realtor-data.csv"),
		DataDelimiter: getEnv("DATA_DELIMITER", ","),
		DataSource:    strings.ToLower(getEnv("DATA_SOURCE", "file")),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "realestate"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "realestate"),
		PostgresDB:       getEnv("POSTGRES_DB", "realestate_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		ListingsTable:    getEnv("LISTINGS_TABLE", "listings"),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 3),
		ClassifyMode:   strings.ToLower(getEnv("CLASSIFY_MODE", "first_seen")),

		QueryRegion:    getEnv("QUERY_REGION", "New York"),
		DealRegion:     getEnv("DEAL_REGION", "Virgin Islands"),
		QueryBedrooms:  getEnvInt("QUERY_BEDROOMS", 3),
		QueryBathrooms: getEnvInt("QUERY_BATHROOMS", 3),
		QueryMaxBudget: getEnvFloat("QUERY_MAX_BUDGET", 2500000),
		Queries:        getEnvList("QUERIES", []string{"cheapest", "priciest", "dirt_cheap", "best_deal", "budget_friendly"}),
		PreviewRows:    getEnvInt("PREVIEW_ROWS", 10),

		Debug: getEnvBool("LOG_DEBUG", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// Delimiter returns the first character of DataDelimiter, or ',' when unset.
func (c *Config) Delimiter() rune {
	for _, r := range c.DataDelimiter {
		return r
	}
	return ','
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

// getEnvList splits a comma-separated value, dropping empty entries.
func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
