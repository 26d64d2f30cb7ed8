package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is built once in main and passed down. Nothing reads the
// environment after Load returns.
type Config struct {
	Port string

	PostgresURI string

	// optional: in-memory page cache is used when empty
	RedisAddr string

	// optional: audit trail is disabled when empty
	MongoURI string
	MongoDB  string

	// optional: uploads go to PublicDir/uploads when empty
	BlobBucket      string
	GoogleCredsFile string
	PublicDir       string

	SessionSecret string
	SiteURL       string
	CORSOrigins   []string

	PageCacheTTL time.Duration
	AuditTTL     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		PostgresURI: os.Getenv("POSTGRES_URI"),

		RedisAddr: firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),

		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  getenv("MONGO_DB", "portfolio"),

		BlobBucket:      os.Getenv("BLOB_BUCKET"),
		GoogleCredsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		PublicDir:       getenv("PUBLIC_DIR", "public"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SiteURL:       getenv("SITE_URL", "http://localhost:3000"),

		PageCacheTTL: getenvDuration("PAGE_CACHE_TTL", 10*time.Minute),
		AuditTTL:     getenvDuration("AUDIT_TTL", 30*24*time.Hour),
	}

	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{cfg.SiteURL}
	}

	if cfg.PostgresURI == "" {
		return nil, errors.New("POSTGRES_URI environment variable is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET environment variable is not set")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
