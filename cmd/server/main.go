package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"folio/internal"
	"folio/internal/env"
	"folio/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func main() {
	deployment := flag.String("deployment", "", "deployment profile (dev|test|prod)")
	portFlag := flag.String("port", "", "port to listen on")
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	deploy := strings.TrimSpace(*deployment)
	if deploy == "" {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Println("Usage: server --deployment <type> --port <port> [--env-root <dir>] [--app-version <version>]")
			os.Exit(1)
		}
		deploy = strings.TrimSpace(args[0])
	}

	if deploy == "" {
		log.Fatal("deployment is required")
	}

	port := strings.TrimSpace(*portFlag)
	if port == "" {
		port = strings.TrimSpace(os.Getenv("PORT"))
	}
	if port == "" {
		log.Fatal("port is required")
	}

	app, cleanup := internal.SetupApp(deploy, *envRoot, *appVersion)
	defer cleanup()

	logger.Lg.Info("starting", zap.String("version", env.VERSION), zap.String("port", port))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logger.Lg.Info("shutting_down")
		if err := app.Shutdown(); err != nil {
			logger.Lg.Error("shutdown_failed", zap.Error(err))
		}
	}()

	if err := app.Listen(fmt.Sprintf(":%s", port), fiber.ListenConfig{
		EnablePrefork:         env.PREFORK,
		DisableStartupMessage: deploy == "prod",
	}); err != nil {
		logger.Lg.Error("listen_failed", zap.String("port", port), zap.Error(err))
	}
}
