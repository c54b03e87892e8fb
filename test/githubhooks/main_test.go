package githubhooks

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"folio/internal"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
)

const (
	testSecret     = "test-secret"
	operatorSecret = "operator-secret"
)

var (
	app  *fiber.App
	mini *miniredis.Miniredis
)

// TestMain spins up the full Fiber app against an in-memory Redis.
func TestMain(m *testing.M) {
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	var err error
	mini, err = miniredis.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "start miniredis: %v\n", err)
		os.Exit(1)
	}

	os.Setenv("GITHUB_WEBHOOK_SECRET", testSecret)
	os.Setenv("OPERATOR_JWT_SECRET", operatorSecret)
	os.Setenv("REDIS_URL", "redis://"+mini.Addr()+"/0")
	os.Setenv("MONGO_URI", "")
	os.Setenv("WEBHOOK_HISTORY_LIMIT", "3")

	var cleanup func()
	app, cleanup = internal.SetupApp("test", *envRoot, *appVersion)

	code := m.Run()

	cleanup()
	mini.Close()
	os.Exit(code)
}
