package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/interfaces/http/response"
	"vox-market.backend/internal/usecases"
)

// AdminHandler handles admin review endpoints
type AdminHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(verificationUsecase *usecases.VerificationUsecase) *AdminHandler {
	return &AdminHandler{
		verificationUsecase: verificationUsecase,
	}
}

// VerifyVendor decides a pending vendor profile
// POST /api/v1/admin/verify-vendor
func (h *AdminHandler) VerifyVendor(c *gin.Context) {
	var input entities.DecideVendorInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	vendor, err := h.verificationUsecase.DecideVendor(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vendor": vendor,
	})
}

// ListVerifications lists submitted documents with their vendors
// GET /api/v1/admin/vendor-verification?status=
func (h *AdminHandler) ListVerifications(c *gin.Context) {
	status := entities.DocumentStatus(c.Query("status"))

	docs, err := h.verificationUsecase.ListDocuments(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"documents": docs,
	})
}

// DecideVerification decides a pending document
// POST /api/v1/admin/vendor-verification
func (h *AdminHandler) DecideVerification(c *gin.Context) {
	var input entities.DecideDocumentInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	doc, err := h.verificationUsecase.DecideDocument(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"document": doc,
	})
}
