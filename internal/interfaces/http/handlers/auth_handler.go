package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/interfaces/http/middleware"
	"vox-market.backend/internal/interfaces/http/response"
	"vox-market.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	maxAge      time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, maxAge time.Duration) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		maxAge:      maxAge,
	}
}

// RegisterCustomer handles customer registration
// POST /api/v1/auth/register-customer
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var input entities.RegisterCustomerInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.RegisterCustomer(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": user,
	})
}

// RegisterVendor handles vendor registration
// POST /api/v1/auth/register-vendor
func (h *AuthHandler) RegisterVendor(c *gin.Context) {
	var input entities.RegisterVendorInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.RegisterVendor(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":          user,
		"vendorProfile": user.VendorProfile,
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.TokenCookie, authResponse.Token, int(h.maxAge.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, authResponse)
}

// Signout deletes the server-side session and clears the login cookie
// POST /api/v1/auth/signout
func (h *AuthHandler) Signout(c *gin.Context) {
	sessionID := c.GetHeader(middleware.SessionIDHeader)
	if err := h.authUsecase.Signout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"message": "signed out",
	})
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authUsecase.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": user,
	})
}
