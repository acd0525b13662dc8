package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/JarodCode/gamevault/docs"
	"github.com/JarodCode/gamevault/internal/handlers"
	"github.com/JarodCode/gamevault/internal/jwt"
	"github.com/JarodCode/gamevault/internal/logger"
	"github.com/JarodCode/gamevault/internal/middlewares"
	"github.com/JarodCode/gamevault/internal/repositories"
	"github.com/JarodCode/gamevault/internal/services"
	"github.com/JarodCode/gamevault/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gamevault API
// @version 1.0.0
// @description Identity and review ledger backend for the game catalog
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, dataDir,
		jwtSecret, jwtExpSecond, bootstrapSecret,
		redisAddr, redisPassword, redisDB, cacheExpSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, dataDir,
		jwtSecret, jwtExpSecond, bootstrapSecret,
		redisAddr, redisPassword, redisDB, cacheExpSecond,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, JWT, Redis, and Kafka configuration. Empty
// ADMIN_BOOTSTRAP_SECRET disables the first-admin bootstrap; empty
// REDIS_ADDR and KAFKA_BROKERS disable the aggregate cache and the review
// event channel respectively.
func parseConfig(path string) (
	appHost, appPort, logLevel, dataDir string,
	jwtSecret string, jwtExpSecond int, bootstrapSecret string,
	redisAddr, redisPassword string, redisDB, cacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	dataDir = getEnv("DATA_DIR", "data")

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "development-only-secret")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Admin bootstrap config
	bootstrapSecret = getEnv("ADMIN_BOOTSTRAP_SECRET", "")

	// Redis config (optional aggregate cache)
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	if cacheExpSecond, err = strconv.Atoi(getEnv("AGGREGATE_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config (optional review event channel)
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "gamevault.reviews")

	return
}

// run initializes the logger, file store, repositories, optional Redis and
// Kafka clients, services, and the HTTP server. It sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, dataDir string,
	jwtSecret string, jwtExpSecond int, bootstrapSecret string,
	redisAddr, redisPassword string, redisDB, cacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Open the file store and load both collections. Users load first so
	// the review load can repair denormalized usernames.
	store, err := storage.New(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	userRepo := repositories.NewUserRepository(store)
	if err := userRepo.Load(); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	reviewRepo := repositories.NewReviewRepository(store)
	if err := reviewRepo.Load(userRepo); err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}

	// Optional Redis aggregate cache
	var cache services.AggregateCache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, aggregate cache disabled", "error", err)
		} else {
			defer rdb.Close()
			cache = repositories.NewAggregateCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)
			logger.Log.Infof("Aggregate cache enabled at %s", redisAddr)
		}
	}

	// Optional Kafka review event writer
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Review event channel enabled, topic %s", kafkaTopic)
	}

	// Initialize services
	tokenService := jwt.New(jwtSecret, time.Duration(jwtExpSecond)*time.Second)
	authService := services.NewAuthService(userRepo, tokenService, bootstrapSecret)
	reviewService := services.NewReviewService(reviewRepo, userRepo, cache, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(authService)
	logoutHandler := handlers.NewLogoutHandler()
	findUserHandler := handlers.NewFindUserHandler(authService)
	promoteHandler := handlers.NewPromoteHandler(authService)
	firstAdminHandler := handlers.NewFirstAdminHandler(authService)
	reviewsListHandler := handlers.NewReviewsListHandler(reviewService)
	reviewCreateHandler := handlers.NewReviewCreateHandler(reviewService)
	reviewDeleteHandler := handlers.NewReviewDeleteHandler(reviewService)
	ratingsHandler := handlers.NewRatingsHandler(reviewService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/users/register", registerHandler)
	r.Post("/api/users/login", loginHandler)
	r.Post("/api/users/logout", logoutHandler)
	r.Post("/api/users/first-admin", firstAdminHandler)
	r.Get("/api/users/find/{username}", findUserHandler)
	r.Get("/api/games/{id}/reviews", reviewsListHandler)
	r.Get("/games/ratings", ratingsHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(&tokenVerifier{tokens: tokenService, auth: authService})
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/users/me", meHandler)
		r.Post("/api/users/{id}/promote", promoteHandler)
		r.Post("/api/games/{id}/reviews", reviewCreateHandler)
		r.Delete("/api/reviews/{id}", reviewDeleteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// tokenVerifier adapts the token service and the auth service's
// directory-backed verification to the auth middleware.
type tokenVerifier struct {
	tokens *jwt.Service
	auth   *services.AuthService
}

func (v *tokenVerifier) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return v.tokens.GetTokenFromRequest(ctx, r)
}

func (v *tokenVerifier) VerifyToken(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	return v.auth.VerifyToken(ctx, tokenString)
}
