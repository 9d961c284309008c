package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/emtionre/satisfaction-service/internal/domain"
	"github.com/emtionre/satisfaction-service/internal/infrastructure/db/sqlstore"
)

type Config struct {
	AppEnv string

	HTTPAddr string

	// Database
	DBDriver       string
	DatabaseURL    string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPass         string
	DBName         string
	DBMaxOpenConns int
	DBTable        string
	DBDateColumn   string

	// Redis & Caching. Empty RedisURL disables the cache.
	RedisURL       string
	CacheTTLDay    time.Duration // daily segments + available times
	CacheTTLMinute time.Duration // minute detail

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	CORSOrigins []string

	// Scoring
	SegmentGap         time.Duration
	ScoringWeightsFile string
	Weights            domain.Weights

	LogLevel  string
	LogFormat string
	LogCaller bool

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", "")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":" + getEnv("PORT", "4000")
	}

	cfg.DBDriver = getEnv("DB_DRIVER", "mysql")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getIntEnv("DB_PORT", 3306)
	cfg.DBUser = getEnv("DB_USER", "root")
	cfg.DBPass = os.Getenv("DB_PASS")
	cfg.DBName = getEnv("DB_NAME", "")
	cfg.DBMaxOpenConns = getIntEnv("DB_MAX_OPEN_CONNS", 10)
	cfg.DBTable = getEnv("DB_TABLE", "emotion_detection_customeremotion")
	cfg.DBDateColumn = getEnv("DB_DATE_COLUMN", "created_at")

	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.CacheTTLDay = getDuration("CACHE_TTL_DAY", 5*time.Minute)
	cfg.CacheTTLMinute = getDuration("CACHE_TTL_MINUTE", 1*time.Minute)

	// Rate Limiting Defaults: 120 reqs / 1 min
	cfg.RLEnabled = getEnv("RL_ENABLED", "true") == "true"
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 120)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGIN", "http://localhost:5173"))

	cfg.SegmentGap = getDuration("SEGMENT_GAP", domain.DefaultSegmentGap)
	cfg.ScoringWeightsFile = getEnv("SCORING_WEIGHTS_FILE", "")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")
	cfg.LogCaller = getEnv("LOG_CALLER", "false") == "true"

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	// validation
	if _, err := sqlstore.DialectFor(cfg.DBDriver); err != nil {
		return nil, fmt.Errorf("invalid DB_DRIVER: %w", err)
	}
	if cfg.DatabaseURL == "" && cfg.DBName == "" {
		return nil, fmt.Errorf("missing DATABASE_URL or DB_NAME")
	}
	// DB_* parts are a local convenience only
	if cfg.AppEnv != "dev" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing DATABASE_URL (required when APP_ENV != dev)")
	}
	if !sqlstore.ValidIdent(cfg.DBTable) {
		return nil, fmt.Errorf("invalid DB_TABLE %q", cfg.DBTable)
	}
	if !sqlstore.ValidIdent(cfg.DBDateColumn) {
		return nil, fmt.Errorf("invalid DB_DATE_COLUMN %q", cfg.DBDateColumn)
	}
	if cfg.SegmentGap <= 0 {
		return nil, fmt.Errorf("SEGMENT_GAP must be positive")
	}

	cfg.Weights = domain.DefaultWeights()
	if cfg.ScoringWeightsFile != "" {
		w, err := LoadWeights(cfg.ScoringWeightsFile)
		if err != nil {
			return nil, err
		}
		cfg.Weights = w
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
