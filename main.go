package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nouhin-backend/controllers"
	"nouhin-backend/documents"
	"nouhin-backend/middlewares"
	"nouhin-backend/routes"
	"nouhin-backend/services"
	"nouhin-backend/store"
)

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// ---- Entity store (flat JSON files)
	st, err := store.Open(envStr("DATA_DIR", "data"), logger)
	if err != nil {
		logger.Fatal("store open failed", zap.Error(err))
	}

	// ---- Document renderer
	var renderer documents.Renderer
	if envStr("DOC_RENDERER", "chrome") == "html" {
		renderer = documents.HTMLRenderer{}
	} else {
		chrome := documents.NewChromeRenderer(documents.ChromeConfig{
			RemoteURL: os.Getenv("CHROME_REMOTE_URL"),
			Timeout:   time.Duration(envInt("CHROME_TIMEOUT_SECONDS", 30)) * time.Second,
			NoSandbox: envInt("CHROME_NO_SANDBOX", 0) == 1,
			Logger:    logger,
		})
		defer chrome.Close()
		renderer = chrome
	}

	svc := services.New(st, renderer, logger)
	ctrl := controllers.New(svc, logger)

	// ---- Limits (configurable via env)
	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 8) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.NewErrorHandler(logger),
		BodyLimit:    bodyLimitBytes,
	})

	// ---- CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: envStr("ALLOWED_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// ---- Global rate limiter
	app.Use(limiter.New(limiter.Config{
		Max:        envInt("RATE_LIMIT_MAX", 120),
		Expiration: time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}))

	// ---- Routes
	routes.Register(app, ctrl)

	// ---- Start
	port := envStr("PORT", "3002")
	logger.Info("starting", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("listen failed", zap.Error(err))
	}
}
