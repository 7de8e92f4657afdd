package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string
	DBPath               string
	LogLevel             string
	EventKey             string
	Season               int
	TBABaseURL           string
	TBAAuthKey           string
	StatboticsV3BaseURL  string
	StatboticsV2BaseURL  string
	OpenRouterBaseURL    string
	OpenRouterAPIKey     string
	OpenRouterModel      string
	AggregationWorkers   int
	AggregationQueueSize int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid. API credentials
// are injected here and nowhere else; the computation core never sees them.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:excalistrategy.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		EventKey:             envOr("EVENT_KEY", "2025iscmp"),
		Season:               envIntOr("SEASON", 2025),
		TBABaseURL:           envOr("TBA_BASE_URL", "https://www.thebluealliance.com/api/v3"),
		TBAAuthKey:           envOr("TBA_AUTH_KEY", ""),
		StatboticsV3BaseURL:  envOr("STATBOTICS_V3_BASE_URL", "https://api.statbotics.io/v3"),
		StatboticsV2BaseURL:  envOr("STATBOTICS_V2_BASE_URL", "https://api.statbotics.io/v2"),
		OpenRouterBaseURL:    envOr("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterAPIKey:     envOr("OPENROUTER_API_KEY", ""),
		OpenRouterModel:      envOr("OPENROUTER_MODEL", "openrouter/cypher-alpha:free"),
		AggregationWorkers:   envIntOr("AGGREGATION_WORKER_COUNT", 2),
		AggregationQueueSize: envIntOr("AGGREGATION_QUEUE_SIZE", 64),
	}
}

// Validate checks that the configuration is usable, collecting every
// problem so the operator sees all of them at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.EventKey == "" {
		problems = append(problems, "EVENT_KEY cannot be empty")
	}
	if c.Season < 1992 {
		problems = append(problems, fmt.Sprintf("SEASON must be a valid FRC season, got %d", c.Season))
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}

	if c.AggregationWorkers <= 0 {
		problems = append(problems, fmt.Sprintf("AGGREGATION_WORKER_COUNT must be positive, got %d", c.AggregationWorkers))
	}
	if c.AggregationQueueSize <= 0 {
		problems = append(problems, fmt.Sprintf("AGGREGATION_QUEUE_SIZE must be positive, got %d", c.AggregationQueueSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
