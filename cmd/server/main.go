package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/delivery/http"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/repository/rediscache"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Structured logging
	zlog, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zlog.Sync()

	// Geocode cache: Redis when reachable, in-memory otherwise
	var cache domain.GeoCache
	redisCache := rediscache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Health(ctx); err != nil {
		zlog.Warn("Could not connect to Redis, using in-memory geocode cache", zap.Error(err))
		cache = rediscache.NewMemoryCache(cfg.CacheTTL)
	} else {
		defer redisCache.Close()
		cache = redisCache
		zlog.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
	}

	// Dependency Injection: Services
	geocodingSvc := service.NewGeocodingService(service.GeocodingConfig{
		BaseURL:   cfg.NominatimBaseURL,
		UserAgent: cfg.NominatimUserAgent,
		Timeout:   cfg.GeocodingTimeout,
	}, cache, zlog)
	weatherSvc := service.NewWeatherService(service.WeatherConfig{
		BaseURL: cfg.OpenMeteoBaseURL,
		Timeout: cfg.WeatherTimeout,
	}, zlog)
	placesSvc := service.NewPlacesService(service.PlacesConfig{
		BaseURL:      cfg.OverpassBaseURL,
		Timeout:      cfg.PlacesTimeout,
		RadiusMeters: cfg.PlacesRadius,
		Limit:        domain.MaxAttractions,
	}, zlog)
	tripSvc := service.NewTripService(geocodingSvc, weatherSvc, placesSvc, zlog)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Inkle Tourism API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, tripSvc, cache)

	// Graceful shutdown
	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zlog.Warn("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited gracefully")
}

type Config struct {
	Port         string
	Env          string
	AllowOrigins string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	NominatimBaseURL   string
	NominatimUserAgent string
	GeocodingTimeout   time.Duration

	OpenMeteoBaseURL string
	WeatherTimeout   time.Duration

	OverpassBaseURL string
	PlacesTimeout   time.Duration
	PlacesRadius    int
}

func loadConfig() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("GO_ENV", "development"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour),

		NominatimBaseURL:   getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", "inkle-tourism/1.0 (tourism@inkle.ai)"),
		GeocodingTimeout:   getEnvDuration("GEOCODING_TIMEOUT", 10*time.Second),

		OpenMeteoBaseURL: getEnv("OPEN_METEO_BASE_URL", "https://api.open-meteo.com"),
		WeatherTimeout:   getEnvDuration("WEATHER_TIMEOUT", 10*time.Second),

		OverpassBaseURL: getEnv("OVERPASS_BASE_URL", "https://overpass-api.de"),
		PlacesTimeout:   getEnvDuration("PLACES_TIMEOUT", 25*time.Second),
		PlacesRadius:    getEnvInt("PLACES_RADIUS_METERS", 8000),
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
