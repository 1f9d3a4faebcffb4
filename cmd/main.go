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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/skillswap/skillswap-api/internal/handlers"
	"github.com/skillswap/skillswap-api/internal/jwt"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/mailer"
	"github.com/skillswap/skillswap-api/internal/middlewares"
	"github.com/skillswap/skillswap-api/internal/repositories"
	"github.com/skillswap/skillswap-api/internal/services"
	"github.com/skillswap/skillswap-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	skillFeedTTL      int // seconds

	kafkaBroker string
	kafkaTopic  string

	minioEndpoint  string
	minioAccessKey string
	minioSecretKey string
	minioBucket    string
	minioPublicURL string
	minioUseSSL    bool

	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
	smtpFrom     string

	jwtSecretKey string
	jwtExpSecond int

	resetTokenExpSecond int
	resetURLBase        string

	swapStrictResolve bool
}

// @title skill-swap API
// @version 1.0.0
// @description Backend for listing teachable skills and negotiating swap exchanges
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns the
// full application configuration with defaults applied.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		val := getEnv(key, strconv.Itoa(defaultValue))
		return strconv.Atoi(val)
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "skillswap")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.skillFeedTTL, err = getEnvInt("SKILL_FEED_TTL_SECOND", 30); err != nil {
		return nil, err
	}

	// Kafka config
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "swap-events")

	// MinIO config
	cfg.minioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	cfg.minioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	cfg.minioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	cfg.minioBucket = getEnv("MINIO_BUCKET", "skillswap-assets")
	cfg.minioPublicURL = getEnv("MINIO_PUBLIC_URL", "http://localhost:9000")
	cfg.minioUseSSL = getEnv("MINIO_USE_SSL", "false") == "true"

	// SMTP config
	cfg.smtpHost = getEnv("SMTP_HOST", "localhost")
	cfg.smtpUsername = getEnv("SMTP_USERNAME", "")
	cfg.smtpPassword = getEnv("SMTP_PASSWORD", "")
	cfg.smtpFrom = getEnv("SMTP_FROM", "noreply@skillswap.local")
	if cfg.smtpPort, err = getEnvInt("SMTP_PORT", 25); err != nil {
		return nil, err
	}

	// JWT config, session tokens last 7 days by default
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", 7*24*3600); err != nil {
		return nil, err
	}

	// Password reset config, tokens last 10 minutes by default
	if cfg.resetTokenExpSecond, err = getEnvInt("RESET_TOKEN_EXP_SECOND", 600); err != nil {
		return nil, err
	}
	cfg.resetURLBase = getEnv("RESET_URL_BASE", "http://localhost:5173")

	// Swap request strictness: true forbids re-resolving terminal requests
	cfg.swapStrictResolve = getEnv("SWAP_STRICT_RESOLVE", "false") == "true"

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, MinIO, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for swap lifecycle events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
	}

	// Connect to MinIO asset store
	assetStore, err := storage.NewAssetStore(ctx,
		cfg.minioEndpoint, cfg.minioAccessKey, cfg.minioSecretKey,
		cfg.minioBucket, cfg.minioPublicURL, cfg.minioUseSSL)
	if err != nil {
		logger.Log.Fatal("MinIO connection error:", err)
	}

	// SMTP mailer for password reset links
	mail := mailer.New(cfg.smtpHost, cfg.smtpPort, cfg.smtpUsername, cfg.smtpPassword, cfg.smtpFrom)

	// Initialize JWT service
	tokens := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	skillReadRepo := repositories.NewSkillReadRepository(db)
	skillWriteRepo := repositories.NewSkillWriteRepository(db, middlewares.GetTxFromContext)
	swapReadRepo := repositories.NewSwapRequestReadRepository(db)
	swapWriteRepo := repositories.NewSwapRequestWriteRepository(db, middlewares.GetTxFromContext)
	skillCache := repositories.NewSkillCacheRepository(rdb, time.Duration(cfg.skillFeedTTL)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, mail,
		time.Duration(cfg.resetTokenExpSecond)*time.Second, cfg.resetURLBase)
	skillService := services.NewSkillService(skillReadRepo, skillWriteRepo, skillCache, assetStore)
	swapService := services.NewSwapService(skillReadRepo, swapReadRepo, swapWriteRepo, kafkaWriter, cfg.swapStrictResolve)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, assetStore)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/api/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))
	r.Post("/api/auth/google", handlers.NewGoogleLoginHandler(authService))
	r.Post("/api/auth/forgot-password", handlers.NewForgotPasswordHandler(authService))
	r.Post("/api/auth/reset-password/{token}", handlers.NewResetPasswordHandler(authService))
	r.Get("/api/skills", handlers.NewListSkillsHandler(skillService))

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokens)
	txMiddleware := middlewares.TxMiddleware(db)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/api/auth/me", handlers.NewMeHandler(authService, tokens))
		r.Get("/api/requests/my-requests", handlers.NewMyRequestsHandler(swapService, tokens))

		// Mutating routes run inside a transaction
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Post("/api/skills", handlers.NewCreateSkillHandler(skillService, assetStore, tokens))
			r.Put("/api/skills/{id}", handlers.NewUpdateSkillHandler(skillService, assetStore, tokens))
			r.Delete("/api/skills/{id}", handlers.NewDeleteSkillHandler(skillService, tokens))

			r.Post("/api/requests", handlers.NewProposeSwapHandler(swapService, tokens))
			r.Put("/api/requests/{id}", handlers.NewResolveSwapHandler(swapService, tokens))

			r.Put("/api/user/profile", handlers.NewUpdateProfileHandler(profileService, assetStore, tokens))
			r.Delete("/api/user/avatar", handlers.NewDeleteAvatarHandler(profileService, tokens))
			r.Put("/api/user/skills", handlers.NewUpdateSkillTagsHandler(profileService, tokens))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
