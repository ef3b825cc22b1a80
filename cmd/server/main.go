package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vox-market.backend/internal/config"
	"vox-market.backend/internal/infrastructure/mailer"
	"vox-market.backend/internal/infrastructure/repositories"
	"vox-market.backend/internal/infrastructure/storage"
	"vox-market.backend/internal/interfaces/http/handlers"
	"vox-market.backend/internal/interfaces/http/middleware"
	"vox-market.backend/internal/usecases"
	"vox-market.backend/pkg/jwt"
	"vox-market.backend/pkg/logger"
	"vox-market.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	newStorageSink  = storage.New
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	sessionService := jwt.NewSessionService(cfg.Session.Secret, cfg.Session.MaxAge)

	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	sink, err := newStorageSink(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage sink: %w", err)
	}

	mail := mailer.New(cfg.Mailer, logger.GetLogger())

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	vendorRepo := repositories.NewVendorProfileRepository(db)
	docRepo := repositories.NewVendorDocumentRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, vendorRepo, uow, sessionService, sessionStore, cfg.Session.MaxAge)
	verificationUsecase := usecases.NewVerificationUsecase(vendorRepo, docRepo, uow, mail, logger.GetLogger())
	documentUsecase := usecases.NewDocumentUsecase(vendorRepo, docRepo, sink, mail, cfg.Storage, cfg.Mailer.AdminEmail, logger.GetLogger())
	vendorUsecase := usecases.NewVendorUsecase(vendorRepo, docRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase, cfg.Session.MaxAge)
	adminHandler := handlers.NewAdminHandler(verificationUsecase)
	vendorHandler := handlers.NewVendorHandler(vendorUsecase, documentUsecase)
	productHandler := handlers.NewProductHandler(vendorUsecase)

	authMiddleware := middleware.AuthMiddleware(sessionService, sessionStore)
	accessGate := middleware.AccessGate(sessionService, sessionStore)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerPageGates(r, accessGate)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		adminHandler:   adminHandler,
		vendorHandler:  vendorHandler,
		productHandler: productHandler,
		authMiddleware: authMiddleware,
	})

	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	log.Printf("🚀 Vox Market Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
