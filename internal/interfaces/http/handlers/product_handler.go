package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/interfaces/http/response"
	"vox-market.backend/internal/usecases"
)

// ProductHandler gates product management behind vendor verification
type ProductHandler struct {
	vendorUsecase *usecases.VendorUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(vendorUsecase *usecases.VendorUsecase) *ProductHandler {
	return &ProductHandler{
		vendorUsecase: vendorUsecase,
	}
}

// Browse grants read access to product management for verified vendors
// GET /api/v1/product-management?vendorEmail=
func (h *ProductHandler) Browse(c *gin.Context) {
	vendorEmail := c.Query("vendorEmail")

	profile, err := h.vendorUsecase.RequireVerified(c.Request.Context(), vendorEmail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vendorId": profile.ID,
		"status":   profile.VerificationStatus,
		"message":  "access granted",
	})
}

// Manage grants write access to product management for verified vendors
// POST /api/v1/product-management
func (h *ProductHandler) Manage(c *gin.Context) {
	var input struct {
		VendorEmail string `json:"vendorEmail"`
		Action      string `json:"action"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.vendorUsecase.RequireVerified(c.Request.Context(), input.VendorEmail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vendorId": profile.ID,
		"status":   profile.VerificationStatus,
		"action":   input.Action,
	})
}
