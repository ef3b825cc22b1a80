package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vox-market.backend/internal/config"
	"vox-market.backend/internal/domain/entities"
	"vox-market.backend/internal/infrastructure/mailer"
	"vox-market.backend/internal/infrastructure/repositories"
	"vox-market.backend/internal/infrastructure/storage"
	"vox-market.backend/internal/interfaces/http/middleware"
	"vox-market.backend/internal/usecases"
	"vox-market.backend/pkg/jwt"
)

const (
	testSecret     = "handler-test-secret"
	testAdminEmail = "admin@vox.local"
)

type testServer struct {
	router     *gin.Engine
	db         *gorm.DB
	userRepo   *repositories.UserRepository
	vendorRepo *repositories.VendorProfileRepository
	docRepo    *repositories.VendorDocumentRepository
	session    *jwt.SessionService
}

func testCtx() context.Context {
	return context.Background()
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")

	for _, q := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		);`,
		`CREATE TABLE vendor_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT UNIQUE,
			business_name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			business_description TEXT,
			phone_number TEXT,
			address TEXT,
			contact_person TEXT,
			verification_status TEXT NOT NULL DEFAULT 'PENDING',
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		);`,
		`CREATE TABLE vendor_documents (
			id TEXT PRIMARY KEY,
			vendor_id TEXT NOT NULL,
			file_name TEXT NOT NULL,
			file_size INTEGER NOT NULL,
			file_type TEXT NOT NULL,
			file_path TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			reviewer_notes TEXT,
			uploaded_at DATETIME NOT NULL,
			reviewed_at DATETIME
		);`,
	} {
		require.NoError(t, db.Exec(q).Error)
	}

	userRepo := repositories.NewUserRepository(db)
	vendorRepo := repositories.NewVendorProfileRepository(db)
	docRepo := repositories.NewVendorDocumentRepository(db)
	uow := repositories.NewUnitOfWork(db)

	session := jwt.NewSessionService(testSecret, time.Hour)
	sink := storage.NewLocalSink(t.TempDir())
	mail := mailer.NewLogMailer(zap.NewNop())
	storageCfg := config.StorageConfig{MaxFileSize: 1 << 20}

	authUsecase := usecases.NewAuthUsecase(userRepo, vendorRepo, uow, session, nil, time.Hour)
	verificationUsecase := usecases.NewVerificationUsecase(vendorRepo, docRepo, uow, mail, zap.NewNop())
	documentUsecase := usecases.NewDocumentUsecase(vendorRepo, docRepo, sink, mail, storageCfg, testAdminEmail, zap.NewNop())
	vendorUsecase := usecases.NewVendorUsecase(vendorRepo, docRepo)

	authHandler := NewAuthHandler(authUsecase, time.Hour)
	adminHandler := NewAdminHandler(verificationUsecase)
	vendorHandler := NewVendorHandler(vendorUsecase, documentUsecase)
	productHandler := NewProductHandler(vendorUsecase)

	authMW := middleware.AuthMiddleware(session, nil)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register-customer", authHandler.RegisterCustomer)
		auth.POST("/register-vendor", authHandler.RegisterVendor)
		auth.POST("/login", authHandler.Login)
		auth.POST("/signout", authHandler.Signout)
		auth.GET("/me", authMW, authHandler.Me)

		admin := v1.Group("/admin")
		admin.POST("/verify-vendor", authMW, middleware.RequireRole(string(entities.UserRoleAdmin)), adminHandler.VerifyVendor)
		admin.GET("/vendor-verification", adminHandler.ListVerifications)
		admin.POST("/vendor-verification", adminHandler.DecideVerification)

		vendor := v1.Group("/vendor")
		vendor.POST("/upload", vendorHandler.Upload)
		vendor.POST("/profile", vendorHandler.CreateProfile)
		vendor.GET("/profile", vendorHandler.GetProfile)

		v1.GET("/product-management", productHandler.Browse)
		v1.POST("/product-management", productHandler.Manage)
	}

	return &testServer{
		router:     r,
		db:         db,
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		docRepo:    docRepo,
		session:    session,
	}
}
