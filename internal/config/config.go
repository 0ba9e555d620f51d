package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout             = 30
	defaultAddress             = ":9090"
	defaultDriver              = "postgres"
	defaultCacheDB             = 0
	defaultCacheTTL            = 10
	defaultBloomBitSize        = 10000000
	defaultBloomHashes         = 3
	defaultIndexSyncIntervalMn = 10
	defaultLogLevel            = "info"
)

type Config struct {
	ServerAddress  string
	ContextTimeout time.Duration

	DBDriver string
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string

	CacheHost string
	CachePort string
	CachePass string
	CacheDB   int
	CacheTTL  time.Duration

	BloomBitSize      uint64
	BloomHashes       uint64
	IndexSyncInterval time.Duration

	AccessTokenKey string

	LogLevel  string
	LogFormat string
}

// Load reads .env when present and then the process environment. Values
// that fail to parse fall back to their defaults, and so do durations that
// aren't positive.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		ServerAddress:     getString("SERVER_ADDRESS", defaultAddress),
		ContextTimeout:    time.Duration(getPositiveInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		DBDriver:          strings.ToLower(getString("DATABASE_DRIVER", defaultDriver)),
		DBHost:            os.Getenv("DATABASE_HOST"),
		DBPort:            os.Getenv("DATABASE_PORT"),
		DBUser:            os.Getenv("DATABASE_USER"),
		DBPass:            os.Getenv("DATABASE_PASS"),
		DBName:            os.Getenv("DATABASE_NAME"),
		CacheHost:         os.Getenv("CACHE_HOST"),
		CachePort:         os.Getenv("CACHE_PORT"),
		CachePass:         os.Getenv("CACHE_PASS"),
		CacheDB:           getInt("CACHE_DB", defaultCacheDB),
		CacheTTL:          time.Duration(getPositiveInt("CACHE_TTL_MINUTES", defaultCacheTTL)) * time.Minute,
		BloomBitSize:      getUint("BLOOM_FILTER_SIZE", defaultBloomBitSize),
		BloomHashes:       getUint("BLOOM_HASH_COUNT", defaultBloomHashes),
		IndexSyncInterval: time.Duration(getPositiveInt("THREAD_INDEX_SYNC_INTERVAL", defaultIndexSyncIntervalMn)) * time.Minute,
		AccessTokenKey:    os.Getenv("ACCESS_TOKEN_KEY"),
		LogLevel:          getString("LOG_LEVEL", defaultLogLevel),
		LogFormat:         os.Getenv("LOG_FORMAT"),
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "mysql" {
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DBDriver)
	}
	if cfg.AccessTokenKey == "" {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_KEY is required")
	}
	return cfg, nil
}

// SetupLogger applies LogLevel and LogFormat to the standard logrus logger.
func (c Config) SetupLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, using %s", c.LogLevel, defaultLogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		if os.Getenv(key) != "" {
			logrus.Warnf("failed to parse %s, using default %d", key, def)
		}
		return def
	}
	return v
}

func getPositiveInt(key string, def int) int {
	v := getInt(key, def)
	if v <= 0 {
		logrus.Warnf("%s must be positive, using default %d", key, def)
		return def
	}
	return v
}

func getUint(key string, def uint64) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil || v == 0 {
		if os.Getenv(key) != "" {
			logrus.Warnf("failed to parse %s, using default %d", key, def)
		}
		return def
	}
	return v
}
