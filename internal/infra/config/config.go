package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceFile  = "file"
	SourceHTTP  = "http"
	SourceS3    = "s3"
	SourceMongo = "mongo"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSOrigins        []string
	LogFile            string
	LogLevel           string
	ResourceSource     string
	ToursPath          string
	CopyPath           string
	ToursURL           string
	CopyURL            string
	ToursKey           string
	CopyKey            string
	FetchTimeout       time.Duration
	S3Endpoint         string
	S3AccessKey        string
	S3SecretKey        string
	S3Bucket           string
	S3UseSSL           bool
	MongoURI           string
	MongoDB            string
	KafkaBrokers       []string
	KafkaTopicPrefix   string
	OutboxPollInterval time.Duration
	RetryBackoff       []time.Duration
	PriceDebounce      time.Duration
	PriceMax           float64
	DefaultLang        string
}

// Lookup resolves a configuration key; an empty result means unset.
type Lookup func(key string) string

// LoadDotEnv loads .env files into the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env", ".env.local"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

func LoadFrom(lookup Lookup) (Config, error) {
	env := envReader{lookup: lookup}
	cfg := Config{
		Env:              env.get("APP_ENV", "dev"),
		HTTPAddr:         env.get("HTTP_ADDR", ":8080"),
		LogFile:          env.get("LOG_FILE", ""),
		LogLevel:         strings.ToLower(env.get("LOG_LEVEL", "info")),
		ResourceSource:   strings.ToLower(env.get("RESOURCE_SOURCE", SourceFile)),
		ToursPath:        env.get("TOURS_PATH", "data/tours.json"),
		CopyPath:         env.get("COPY_PATH", "data/ui-copy.json"),
		ToursURL:         env.get("TOURS_URL", ""),
		CopyURL:          env.get("COPY_URL", ""),
		ToursKey:         env.get("TOURS_KEY", "tours.json"),
		CopyKey:          env.get("COPY_KEY", "ui-copy.json"),
		S3Endpoint:       env.get("S3_ENDPOINT", "http://localhost:9000"),
		S3AccessKey:      env.get("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:      env.get("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:         env.get("S3_BUCKET", "travelgo-data"),
		MongoURI:         env.get("MONGO_URI", ""),
		MongoDB:          env.get("MONGO_DB", "travelgo"),
		KafkaTopicPrefix: env.get("KAFKA_TOPIC_PREFIX", ""),
		DefaultLang:      strings.ToLower(env.get("DEFAULT_LANG", "uk")),
	}
	cfg.KafkaBrokers = env.list("KAFKA_BROKERS")
	cfg.CORSOrigins = env.list("CORS_ORIGINS")

	var err error
	if cfg.FetchTimeout, err = env.duration("FETCH_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.OutboxPollInterval, err = env.duration("OUTBOX_POLL_INTERVAL", 500*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.PriceDebounce, err = env.duration("PRICE_DEBOUNCE", 150*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.S3UseSSL, err = env.boolean("S3_USE_SSL", false); err != nil {
		return Config{}, err
	}
	if cfg.PriceMax, err = env.float("PRICE_MAX", 3000); err != nil {
		return Config{}, err
	}
	for _, raw := range strings.Split(env.get("RETRY_BACKOFF", "1s,5s,30s"), ",") {
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RETRY_BACKOFF component %q: %w", raw, err)
		}
		cfg.RetryBackoff = append(cfg.RetryBackoff, d)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.ResourceSource {
	case SourceFile:
		if c.ToursPath == "" || c.CopyPath == "" {
			return fmt.Errorf("TOURS_PATH and COPY_PATH are required for %s source", SourceFile)
		}
	case SourceHTTP:
		if c.ToursURL == "" || c.CopyURL == "" {
			return fmt.Errorf("TOURS_URL and COPY_URL are required for %s source", SourceHTTP)
		}
	case SourceS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for %s source", SourceS3)
		}
	case SourceMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for %s source", SourceMongo)
		}
	default:
		return fmt.Errorf("unknown RESOURCE_SOURCE %q", c.ResourceSource)
	}
	if c.PriceMax <= 0 {
		return fmt.Errorf("PRICE_MAX must be positive")
	}
	return nil
}

// Dev reports whether the process runs in a local development environment.
func (c Config) Dev() bool {
	return c.Env == "dev" || c.Env == "local"
}

type envReader struct {
	lookup Lookup
}

func (r envReader) get(key, def string) string {
	if v := strings.TrimSpace(r.lookup(key)); v != "" {
		return v
	}
	return def
}

func (r envReader) list(key string) []string {
	raw := r.get(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r envReader) duration(key string, def time.Duration) (time.Duration, error) {
	raw := r.get(key, "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func (r envReader) float(key string, def float64) (float64, error) {
	raw := r.get(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %w", key, err)
	}
	return v, nil
}

func (r envReader) boolean(key string, def bool) (bool, error) {
	raw := r.get(key, "")
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
