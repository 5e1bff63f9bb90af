package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	// Keyword extraction
	VocabularyPath  string
	VocabularyMatch string
	MaxKeywords     int
	QueryKeywords   int

	// Uploads
	UploadDir      string
	UploadMaxBytes int64

	Adzuna AdzunaConfig

	RedisURL       string
	SearchCacheTTL time.Duration

	RabbitMQURL    string
	EventsExchange string

	S3 S3Config
}

type AdzunaConfig struct {
	AppID          string
	AppKey         string
	Country        string
	BaseURL        string
	ResultsPerPage int
	Timeout        time.Duration
}

// S3Config describes an S3-compatible bucket (AWS S3, Cloudflare R2, MinIO) for raw uploads.
type S3Config struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// Enabled reports whether uploads should go to S3 instead of the local upload dir.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		VocabularyPath:  os.Getenv("VOCABULARY_PATH"),
		VocabularyMatch: getEnv("VOCABULARY_MATCH", "substring"),
		MaxKeywords:     getEnvInt("MAX_KEYWORDS", 10),
		QueryKeywords:   getEnvInt("QUERY_KEYWORDS", 2),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes:  int64(getEnvInt("UPLOAD_MAX_BYTES", 15<<20)),
		Adzuna: AdzunaConfig{
			AppID:          os.Getenv("ADZUNA_APP_ID"),
			AppKey:         os.Getenv("ADZUNA_APP_KEY"),
			Country:        getEnv("ADZUNA_COUNTRY", "in"),
			BaseURL:        getEnv("ADZUNA_BASE_URL", "https://api.adzuna.com/v1/api"),
			ResultsPerPage: getEnvInt("ADZUNA_RESULTS_PER_PAGE", 20),
			Timeout:        getEnvDuration("ADZUNA_TIMEOUT", 8*time.Second),
		},
		RedisURL:       os.Getenv("REDIS_URL"),
		SearchCacheTTL: getEnvDuration("SEARCH_CACHE_TTL", 10*time.Minute),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		EventsExchange: getEnv("EVENTS_EXCHANGE", "joblens_events"),
		S3: S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "auto"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	var errs []error
	if c.MaxKeywords <= 0 {
		errs = append(errs, errors.New("MAX_KEYWORDS must be positive"))
	}
	if c.QueryKeywords <= 0 {
		errs = append(errs, errors.New("QUERY_KEYWORDS must be positive"))
	}
	if c.UploadMaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}
	if c.Adzuna.ResultsPerPage <= 0 {
		errs = append(errs, errors.New("ADZUNA_RESULTS_PER_PAGE must be positive"))
	}
	if c.S3.Enabled() && (c.S3.AccessKey == "" || c.S3.SecretKey == "") {
		errs = append(errs, errors.New("S3_BUCKET is set but S3_ACCESS_KEY or S3_SECRET_KEY is missing"))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, errors.New("LOG_FORMAT must be text or json"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
