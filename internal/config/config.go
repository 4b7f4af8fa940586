package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	BlobBasePath string // where uploaded source documents are archived

	EnableLocalAuth bool
	HMACSecret      string

	MaxUploadBytes int64

	// Upload rate limiting, per client IP.
	ExtractRatePerMin int
	ExtractBurst      int

	// Share-link read cache.
	ShareCacheTTL time.Duration

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:          addr,
		PublicURL:         os.Getenv("PUBLIC_URL"),
		DBDriver:          envOr("DB_DRIVER", "sqlite"),
		DBDSN:             envOr("DB_DSN", ""),
		BlobBasePath:      envOr("BLOB_BASE_PATH", "./data"),
		EnableLocalAuth:   envBool("ENABLE_LOCAL_AUTH", true),
		HMACSecret:        envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 10<<20),
		ExtractRatePerMin: int(envInt64("EXTRACT_RATE_PER_MIN", 10)),
		ExtractBurst:      int(envInt64("EXTRACT_BURST", 3)),
		ShareCacheTTL:     envDuration("SHARE_CACHE_TTL", 5*time.Minute),
		CORSOrigins:       csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
