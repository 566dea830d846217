package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"platina/pkg/cache"
	"platina/pkg/config"
	"platina/pkg/database"
	"platina/pkg/jwt"
	"platina/pkg/logger"
	"platina/pkg/queue"
	"platina/pkg/retry"
	"platina/pkg/s3"
	contentHTTP "platina/services/content/internal/controller/http"
	contentCache "platina/services/content/internal/repo/cache"
	"platina/services/content/internal/repo/persistent"
	"platina/services/content/internal/repo/sample"
	"platina/services/content/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "platina/services/content/docs" // Swagger docs
)

const (
	adminRateLimit  = 60
	adminRateWindow = time.Minute
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server

	contentCache *contentCache.ContentCache
	store        usecase.ContentStore
	userRepo     persistent.UserRepository

	ContentUseCase usecase.ContentUseCase
	AuthUseCase    usecase.AuthUseCase
}

// NewApp connects to whatever backing services are configured. Only the
// database decides between live and sample content; redis, S3 and RabbitMQ
// are optional and their absence is logged, not fatal.
func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	var db *gorm.DB
	if cfg.BackendConfigured() {
		var err error
		db, err = database.NewPostgresDB(cfg)
		if err != nil {
			log.Error("Failed to connect to database: %v", err)
			return nil, err
		}
	} else {
		log.Warn("DB_HOST/DB_PASSWORD not set, serving sample content read-only")
	}

	var redisClient *redis.Client
	if cfg.RedisConfigured() {
		var err error
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v (continuing without cache)", err)
			redisClient = nil
		}
	}

	var s3Client *s3.Client
	if cfg.S3Configured() {
		var err error
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v (uploads disabled)", err)
			s3Client = nil
		}
	}

	var queueClient *queue.Client
	if cfg.RabbitMQConfigured() {
		var err error
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
			queueClient = nil
		}
	}

	a := &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		queueClient: queueClient,
	}
	a.buildUseCases()
	return a, nil
}

// The use case ports are interfaces, so a nil client must stay a nil
// interface rather than a typed nil pointer.
func (a *App) buildUseCases() {
	var events usecase.EventPublisher
	if a.db != nil {
		a.store = persistent.NewContentRepository(a.db, a.log)
		a.userRepo = persistent.NewUserRepository(a.db)
	}
	if a.queueClient != nil {
		events = a.queueClient
	}

	retrier := retry.New(retry.Policy{
		MaxRetries:   a.cfg.RetryMaxRetries,
		InitialDelay: a.cfg.RetryInitialDelay,
		MaxDelay:     a.cfg.RetryMaxDelay,
	}, a.log.Named("retry"))

	a.contentCache = contentCache.NewContentCache(a.redisClient, contentCache.DefaultTTL, a.log)
	a.ContentUseCase = usecase.NewContentUseCase(
		a.store,
		sample.NewRepository(),
		a.contentCache,
		events,
		retrier,
		a.log,
	)
	a.AuthUseCase = usecase.NewAuthUseCase(a.userRepo, a.store, a.jwtService, a.log)
}

func (a *App) Run() error {
	var storage usecase.FileStorage
	if a.s3Client != nil {
		storage = a.s3Client
	}

	authorUseCase := usecase.NewAuthorUseCase(a.store, a.userRepo, a.contentCache, a.log)
	uploadUseCase := usecase.NewUploadUseCase(storage, a.cfg.MaxUploadBytes, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	contentHTTP.RegisterRoutes(r, contentHTTP.Handlers{
		Content: contentHTTP.NewContentHandler(a.ContentUseCase, a.log),
		Auth:    contentHTTP.NewAuthHandler(a.AuthUseCase, authorUseCase, a.jwtService.TTL(), a.cfg.CookieSecure),
		Author:  contentHTTP.NewAuthorHandler(authorUseCase),
		Upload:  contentHTTP.NewUploadHandler(uploadUseCase),
	}, contentHTTP.RouterConfig{
		AdminEnabled:    a.cfg.AdminEnabled,
		JWTService:      a.jwtService,
		RateLimiter:     a.redisClient,
		AdminRateLimit:  adminRateLimit,
		AdminRateWindow: adminRateWindow,
	})

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Content service starting on port %s (live backend: %t)", a.cfg.ServerPort, a.ContentUseCase.LiveBackend())
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down content service...")
}

// Close releases the backing connections without touching the HTTP server.
func (a *App) Close() {
	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Error("Error closing database: %v", err)
			}
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	_ = a.log.Sync()
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if shutdownErr == nil {
		a.log.Info("Content service exited")
	}
	a.Close()
	return shutdownErr
}
