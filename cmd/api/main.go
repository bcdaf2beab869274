// ABOUTME: Main entry point for the Swagger UI assets API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swaggerui-assets-api/api"
	"swaggerui-assets-api/api/handlers"
	"swaggerui-assets-api/core/assets"
	"swaggerui-assets-api/core/help"
	"swaggerui-assets-api/core/interfaces"
	"swaggerui-assets-api/core/library"
	"swaggerui-assets-api/core/svgicons"
	"swaggerui-assets-api/infrastructure/cache/memory"
	"swaggerui-assets-api/infrastructure/cache/redis"
	"swaggerui-assets-api/infrastructure/fs/osfs"
	logrusadapter "swaggerui-assets-api/infrastructure/logger/logrus"
	goldmarkadapter "swaggerui-assets-api/infrastructure/markdown/goldmark"
	"swaggerui-assets-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusadapter.NewLogrusLogger(cfg.Server.LogLevel)
	logger.Info("Starting Swagger UI assets API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"app_root":   cfg.Library.AppRoot,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		logger.Info("Using memory cache", nil)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		FileSystem: osfs.NewOSFileSystem(),
		Logger:     logger,
	}

	// Create services
	locatorService := library.NewService(deps, cfg.Library.AppRoot)
	registrarService := assets.NewService(locatorService)
	svgService := svgicons.NewService(deps, locatorService)

	var renderer interfaces.MarkdownRenderer
	if cfg.Help.Markdown {
		renderer = goldmarkadapter.NewGoldmarkRenderer()
	}
	helpService := help.NewService(deps.FileSystem, renderer, cfg.Help.ReadmePath)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	assetsHandler := handlers.NewAssetsHandler(registrarService, locatorService)
	assetsHandler.RegisterRoutes(humaAPI)

	svgHandler := handlers.NewSVGHandler(svgService)
	svgHandler.RegisterRoutes(humaAPI)

	cacheHandler := handlers.NewCacheHandler(locatorService, svgService)
	cacheHandler.RegisterRoutes(humaAPI)

	helpHandler := handlers.NewHelpHandler(helpService)
	helpHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
