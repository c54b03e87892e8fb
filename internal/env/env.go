package env

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRedisURL       = "redis://127.0.0.1:6379/0"
	defaultMongoDatabase  = "folio"
	defaultHistoryLimit   = 10
	defaultRenderCacheTTL = 24 * time.Hour
)

// actual environment variables
var GITHUB_WEBHOOK_SECRET string
var REDIS_URL string
var MONGO_URI string
var MONGO_DATABASE string
var OPERATOR_JWT_SECRET []byte
var WEBHOOK_HISTORY_LIMIT int
var RENDER_CACHE_TTL time.Duration
var PREFORK bool

// this is required
var VERSION string

func Init(envRoot string, appVersion string) {
	loadEnv(envRoot)
	loadVersion(appVersion)

	PREFORK, _ = strconv.ParseBool(os.Getenv("PREFORK"))
	GITHUB_WEBHOOK_SECRET = strings.TrimSpace(os.Getenv("GITHUB_WEBHOOK_SECRET"))
	REDIS_URL = envDefault("REDIS_URL", defaultRedisURL)
	MONGO_URI = strings.TrimSpace(os.Getenv("MONGO_URI"))
	MONGO_DATABASE = envDefault("MONGO_DATABASE", defaultMongoDatabase)
	OPERATOR_JWT_SECRET = []byte(strings.TrimSpace(os.Getenv("OPERATOR_JWT_SECRET")))
	RENDER_CACHE_TTL = envDuration("RENDER_CACHE_TTL", defaultRenderCacheTTL)

	WEBHOOK_HISTORY_LIMIT = envInt("WEBHOOK_HISTORY_LIMIT", defaultHistoryLimit)
	if WEBHOOK_HISTORY_LIMIT < 1 {
		WEBHOOK_HISTORY_LIMIT = defaultHistoryLimit
	}
}

// loadEnv reads the optional .env file; values already exported by the
// process take precedence.
func loadEnv(envRoot string) {
	if envRoot == "" {
		envRoot = repoRoot()
	}

	path := path.Join(envRoot, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		log.Fatalf("failed to load env file %s: %v", path, err)
	}
}

func loadVersion(appVersion string) {
	if appVersion != "" {
		VERSION = appVersion
		return
	}

	data, err := os.ReadFile(filepath.Join(repoRoot(), "VERSION"))
	if err != nil {
		VERSION = "dev"
		return
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed != "" {
		VERSION = trimmed
	} else {
		VERSION = "dev"
	}
}

func envDefault(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(val)); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func repoRoot() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "../..")
}
