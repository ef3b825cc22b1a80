package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"vox-market.backend/internal/domain/entities"
	"vox-market.backend/internal/interfaces/http/handlers"
	"vox-market.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	adminHandler   *handlers.AdminHandler
	vendorHandler  *handlers.VendorHandler
	productHandler *handlers.ProductHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public except /me)
		auth := v1.Group("/auth")
		{
			auth.POST("/register-customer", d.authHandler.RegisterCustomer)
			auth.POST("/register-vendor", d.authHandler.RegisterVendor)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/signout", d.authHandler.Signout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.POST("/verify-vendor",
				d.authMiddleware,
				middleware.RequireRole(string(entities.UserRoleAdmin)),
				d.adminHandler.VerifyVendor,
			)

			// Document review is unauthenticated, matching the consumer
			// that calls it without a session
			admin.GET("/vendor-verification", d.adminHandler.ListVerifications)
			admin.POST("/vendor-verification", d.adminHandler.DecideVerification)
		}

		// Vendor routes (public, keyed by vendorId/email)
		vendor := v1.Group("/vendor")
		{
			vendor.POST("/upload", d.vendorHandler.Upload)
			vendor.POST("/profile", d.vendorHandler.CreateProfile)
			vendor.GET("/profile", d.vendorHandler.GetProfile)
		}

		// Product management, gated on verification status
		v1.GET("/product-management", d.productHandler.Browse)
		v1.POST("/product-management", d.productHandler.Manage)
	}
}

// registerPageGates protects the page route groups by role claim. The
// handlers only acknowledge the page; rendering lives in the frontend.
func registerPageGates(r *gin.Engine, gate gin.HandlerFunc) {
	page := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": c.Request.URL.Path})
	}

	for _, group := range []string{"/dashboard", "/admin", "/vendor", "/customer"} {
		g := r.Group(group)
		g.Use(gate)
		g.GET("", page)
		g.GET("/*rest", page)
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID, X-Session-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
