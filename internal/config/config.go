package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Summary sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 5s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Source      string         // "file" | "redis"
	SummaryFile string         // path to the summary file written by the monitor (SOURCE=file)
	Timezone    string         // IANA name used for "today/yesterday" buckets (ex: Europe/Paris)
	Location    *time.Location // resolved Timezone

	// Redis (SOURCE=redis)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict /api and /ui to these Host headers
	AllowedCIDRS []string // optional, restrict health endpoints to these IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateLimitBurst  int // requests a client may burst on /api and /ui (0 = disabled)
	RateLimitPerMin int // refill rate per client IP
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("RELEASEWATCH_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("RELEASEWATCH_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("RELEASEWATCH_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("RELEASEWATCH_LOG_LEVEL", "info"),
		PrettyLog: mustBool("RELEASEWATCH_PRETTY_LOG", true),

		// Summaries
		Source:      strings.ToLower(getenv("RELEASEWATCH_SOURCE", SourceFile)),
		SummaryFile: getenv("RELEASEWATCH_SUMMARY_FILE", "/app/summary.yaml"),
		Timezone:    getenv("RELEASEWATCH_TIMEZONE", "UTC"),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("RELEASEWATCH_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("RELEASEWATCH_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("RELEASEWATCH_TRUST_PROXY", false),

		RateLimitBurst:  getenvInt("RELEASEWATCH_RATE_LIMIT_BURST", 60),
		RateLimitPerMin: getenvInt("RELEASEWATCH_RATE_LIMIT_PER_MIN", 120),
	}

	switch cfg.Source {
	case SourceFile:
	case SourceRedis:
		loadRedis(cfg)
	default:
		panic(fmt.Sprintf("❌ FATAL: RELEASEWATCH_SOURCE must be %q or %q, got %q", SourceFile, SourceRedis, cfg.Source))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid RELEASEWATCH_TIMEZONE %q: %v", cfg.Timezone, err))
	}
	cfg.Location = loc

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// loadRedis reads the Redis settings; the address and DB are required.
func loadRedis(cfg *Config) {
	cfg.RedisAddr = requireEnv("RELEASEWATCH_REDIS_ADDR")
	cfg.RedisUser = getenv("RELEASEWATCH_REDIS_USERNAME", "")
	cfg.RedisPassword = getenv("RELEASEWATCH_REDIS_PASSWORD", "")
	cfg.RedisDB = requireEnvInt("RELEASEWATCH_REDIS_DB")
	cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
	cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
	cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
	cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
	cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
	cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := requireEnv(key)
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
