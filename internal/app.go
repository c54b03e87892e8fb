package internal

import (
	"strings"

	"folio/internal/db"
	"folio/internal/env"
	"folio/internal/events"
	"folio/internal/githubhooks"
	"folio/internal/logger"
	"folio/internal/middleware"
	"folio/internal/operators"
	"folio/internal/revalidate"
	"folio/internal/swagger"
	"folio/internal/webhookdata"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

// SetupApp builds the service and returns it with a cleanup func that
// flushes audit events and closes every client.
func SetupApp(deployment string, envRoot string, appVersion string) (*fiber.App, func()) {
	env.Init(envRoot, appVersion)

	deploy := strings.TrimSpace(deployment)
	logger.Init(deploy)

	app := fiber.New(fiber.Config{AppName: "folio"})
	app.Use(recoverer.New())
	app.Use(middleware.RequestLogger())

	kv := db.NewCache(env.REDIS_URL)
	store := webhookdata.NewStore(kv, env.WEBHOOK_HISTORY_LIMIT)

	tags, err := revalidate.NewTagCache(env.RENDER_CACHE_TTL)
	if err != nil {
		logger.Lg.Fatal("render_cache_init_failed", zap.Error(err))
	}

	var (
		mongo   *db.Mongo
		emitter *events.Emitter
	)
	if env.MONGO_URI != "" {
		mongo, err = db.InitDB(env.MONGO_URI, env.MONGO_DATABASE)
		if err != nil {
			logger.Lg.Warn("audit_log_disabled", zap.Error(err))
		} else {
			emitter = events.NewEmitter(mongo.Events, deploy)
		}
	}

	if env.GITHUB_WEBHOOK_SECRET == "" {
		logger.Lg.Warn("webhook_secret_missing")
	}

	guard := operators.Middleware(env.OPERATOR_JWT_SECRET)

	api := app.Group("/api")

	api.Get("/meta/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	api.Get("/meta/version", func(c fiber.Ctx) error {
		return c.SendString("v" + env.VERSION)
	})

	githubhooks.Routes(api, &githubhooks.Handler{
		Secret:  env.GITHUB_WEBHOOK_SECRET,
		Records: store,
		Cache:   tags,
		Events:  emitter,
	})
	webhookdata.Routes(api, &webhookdata.Handlers{
		Store:  store,
		Events: emitter,
	}, guard)
	revalidate.Routes(api, &revalidate.Handlers{
		Cache:  tags,
		Events: emitter,
	}, guard)

	swagger.Register(app)

	cleanup := func() {
		emitter.Close()
		mongo.Close()
		_ = kv.Close()
		logger.Sync()
	}

	return app, cleanup
}
