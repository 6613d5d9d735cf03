package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Scorer      ScorerConfig
	Assistant   AssistantConfig
	Matchmaking MatchmakingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// ScorerConfig points at the external ML ranking service.
type ScorerConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AssistantConfig struct {
	GeminiAPIKey string
	Model        string
}

type MatchmakingConfig struct {
	TopN int
}

const (
	defaultScorerTimeout    = 10 * time.Second
	defaultAccessExpiresIn  = 15 * time.Minute
	defaultRefreshExpiresIn = 7 * 24 * time.Hour
	defaultAssistantModel   = "gemini-2.5-flash-lite"
	defaultMatchTopN        = 10
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: durationFromEnv("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32FromEnv("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:   int32FromEnv("DB_POOL_MIN_CONNS", 0),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationFromEnv("JWT_ACCESS_EXPIRES_IN", defaultAccessExpiresIn),
		RefreshExpiresIn: durationFromEnv("JWT_REFRESH_EXPIRES_IN", defaultRefreshExpiresIn),
	}

	cfg.Scorer = ScorerConfig{
		BaseURL: req("ML_SERVICE_URL"),
		Timeout: durationFromEnv("ML_SERVICE_TIMEOUT", defaultScorerTimeout),
	}

	cfg.Assistant = AssistantConfig{
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		Model:        stringOrDefault(opt("GEMINI_MODEL"), defaultAssistantModel),
	}

	cfg.Matchmaking = MatchmakingConfig{
		TopN: intFromEnv("MATCH_TOP_N", defaultMatchTopN),
	}
	if cfg.Matchmaking.TopN <= 0 {
		cfg.Matchmaking.TopN = defaultMatchTopN
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func stringOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intFromEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func int32FromEnv(key string, def int32) int32 {
	return int32(intFromEnv(key, int(def)))
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if v, err := time.ParseDuration(raw); err == nil && v > 0 {
		return v
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
