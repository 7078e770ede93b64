package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-notes-tracker/pkg/validator"

	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/action"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/auth"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meeting-notes-tracker/pkg/ai"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/jwt"
)

const processLockTTL = 2 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(echomw.Recover())

	// CORS middleware
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		log.Println("🔄 Applying SQL migrations...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; set DB_AUTO_MIGRATE=true or run sql-migrate manually")
	}

	// Initialize Redis for the per-meeting processing lock. The service runs
	// lockless when Redis is disabled or unreachable.
	var lock meeting.Locker
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, processing runs without lock: %v", err)
		} else {
			defer redisClient.Close()
			lock = cache.NewProcessLock(redisClient, processLockTTL)
		}
	}

	// Initialize object storage for raw model response archiving
	var archiver meeting.Archiver
	if cfg.Storage.Enabled {
		log.Println("📦 Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		archiver = minioClient
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	actionRepo := repository.NewActionItemRepository(db)

	// Initialize LLM client
	log.Println("🤖 Initializing Groq client...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewAuthService(userRepo, jwtManager, logger)
	meetingService := meeting.NewMeetingService(meetingRepo, actionRepo, groqClient, lock, archiver, logger)
	actionService := action.NewActionService(actionRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, jwtManager, logger)
	meetingHandler := handler.NewMeeting(meetingService, logger)
	actionHandler := handler.NewAction(actionService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager, authHandler, meetingHandler, actionHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
