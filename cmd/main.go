package main

import (
	"context"
	"errors"
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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	_ "github.com/sbilibin2017/recipe-book/docs"
	"github.com/sbilibin2017/recipe-book/internal/handlers"
	"github.com/sbilibin2017/recipe-book/internal/jwt"
	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/middlewares"
	"github.com/sbilibin2017/recipe-book/internal/repositories"
	"github.com/sbilibin2017/recipe-book/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	userStoreMongo    = "mongo"
	userStorePostgres = "postgres"
)

// config is the full service configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	MongoURI string
	MongoDB  string

	// UserStore selects where users live: "mongo" or "postgres".
	UserStore            string
	PostgresDSN          string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	// An empty RedisAddr disables the recipe cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisCacheTTL time.Duration

	// Empty KafkaBrokers disables recipe events.
	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	CORSAllowedOrigins []string
}

// @title recipe-book API
// @version 1.0.0
// @description Recipe book service: recipe search and CRUD with cuisine and tag resolution, user signup and bearer token login
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
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file (if present) and
// returns the application, storage, cache, broker, logging and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	cfg.MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.MongoDB = getEnv("MONGO_DB", "recipe_book")

	// User store config
	cfg.UserStore = strings.ToLower(getEnv("USER_STORE", userStoreMongo))
	cfg.PostgresDSN = getEnv("POSTGRES_DSN", "")
	if cfg.PostgresMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PostgresMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}
	switch cfg.UserStore {
	case userStoreMongo:
	case userStorePostgres:
		if cfg.PostgresDSN == "" {
			return cfg, errors.New("POSTGRES_DSN is required when USER_STORE is postgres")
		}
	default:
		return cfg, fmt.Errorf("USER_STORE: unsupported value %q", cfg.UserStore)
	}

	// Redis config
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.RedisCacheTTL, err = time.ParseDuration(getEnv("REDIS_CACHE_TTL", "5m")); err != nil {
		return cfg, fmt.Errorf("REDIS_CACHE_TTL: %w", err)
	}

	// Kafka config
	cfg.KafkaBrokers = splitCSV(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "recipe-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = time.ParseDuration(getEnv("JWT_EXP", jwt.DefaultExpiration.String())); err != nil {
		return cfg, fmt.Errorf("JWT_EXP: %w", err)
	}

	// CORS config
	cfg.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

func splitCSV(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// run initializes the logger, MongoDB, the optional PostgreSQL user store,
// Redis cache and Kafka writer, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer mongoClient.Disconnect(context.Background())
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	mdb := mongoClient.Database(cfg.MongoDB)
	log.Infof("Connected to MongoDB database %s", cfg.MongoDB)

	// Initialize user store
	var (
		userReader        services.UserReader
		userWriter        services.UserWriter
		signupMiddlewares []func(http.Handler) http.Handler
	)
	switch cfg.UserStore {
	case userStorePostgres:
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
		db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
		if _, err := db.ExecContext(ctx, repositories.UsersSchema); err != nil {
			return fmt.Errorf("PostgreSQL schema setup failed: %w", err)
		}

		userReader = repositories.NewUserPostgresReadRepository(db)
		userWriter = repositories.NewUserPostgresWriteRepository(db, middlewares.GetTxFromContext)
		signupMiddlewares = append(signupMiddlewares, middlewares.TxMiddleware(db))
		log.Info("Using PostgreSQL user store")
	default:
		userReader = repositories.NewUserMongoReadRepository(mdb)
		userWriter = repositories.NewUserMongoWriteRepository(mdb)
		log.Info("Using MongoDB user store")
	}

	// Connect to Redis
	var cache services.RecipeCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewRecipeCacheRepository(rdb, cfg.RedisCacheTTL)
		log.Infof("Recipe cache enabled at %s", cfg.RedisAddr)
	}

	// Initialize Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Recipe events enabled on topic %s", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize services
	authService := services.NewAuthService(userReader, userWriter, tokener)
	recipeService := services.NewRecipeService(
		repositories.NewRecipeReadRepository(mdb),
		repositories.NewRecipeWriteRepository(mdb),
		repositories.NewCuisineRepository(mdb),
		repositories.NewTagRepository(mdb),
		cache,
		kafkaWriter,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, log, authService, recipeService, tokener, signupMiddlewares...),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter builds the HTTP pipeline: panic recovery, CORS, request logging
// and metrics for every route, bearer authorization for protected routes.
func newRouter(
	cfg config,
	log *zap.SugaredLogger,
	authService *services.AuthService,
	recipeService *services.RecipeService,
	tokener *jwt.JWT,
	signupMiddlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.MetricsMiddleware)

	// Public routes
	r.Get("/", handlers.NewHelloHandler())
	r.Get("/echo", handlers.NewEchoHandler())
	r.With(signupMiddlewares...).Post("/users", handlers.NewSignupHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))

	r.Get("/recipes/{id}", handlers.NewGetRecipeHandler(recipeService))
	r.Post("/recipes", handlers.NewCreateRecipeHandler(recipeService))
	r.Put("/recipes/{id}", handlers.NewUpdateRecipeHandler(recipeService))
	r.Delete("/recipes/{id}", handlers.NewDeleteRecipeHandler(recipeService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Get("/recipes", handlers.NewSearchRecipesHandler(recipeService))
		r.Get("/profile", handlers.NewProfileHandler(middlewares.ClaimsFromContext))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
