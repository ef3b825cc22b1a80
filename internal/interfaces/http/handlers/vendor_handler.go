package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/interfaces/http/response"
	"vox-market.backend/internal/usecases"
)

// VendorHandler handles vendor profile and document upload endpoints
type VendorHandler struct {
	vendorUsecase   *usecases.VendorUsecase
	documentUsecase *usecases.DocumentUsecase
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorUsecase *usecases.VendorUsecase, documentUsecase *usecases.DocumentUsecase) *VendorHandler {
	return &VendorHandler{
		vendorUsecase:   vendorUsecase,
		documentUsecase: documentUsecase,
	}
}

// Upload accepts a multipart verification document for a vendor
// POST /api/v1/vendor/upload
func (h *VendorHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("file is required"))
		return
	}

	vendorID := c.PostForm("vendorId")
	if vendorID == "" {
		response.Error(c, domainerrors.BadRequest("vendorId is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("failed to read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("failed to read uploaded file"))
		return
	}

	doc, err := h.documentUsecase.Upload(c.Request.Context(), &usecases.UploadDocumentInput{
		VendorID: vendorID,
		FileName: fileHeader.Filename,
		FileType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"documentId": doc.ID,
	})
}

// CreateProfile creates (or returns) a vendor profile keyed by email
// POST /api/v1/vendor/profile
func (h *VendorHandler) CreateProfile(c *gin.Context) {
	var input entities.CreateProfileInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.vendorUsecase.CreateProfile(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vendorId": profile.ID,
	})
}

// GetProfile returns a vendor profile and its documents
// GET /api/v1/vendor/profile?email=
func (h *VendorHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")

	profile, docs, err := h.vendorUsecase.GetProfile(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vendor":    profile,
		"documents": docs,
	})
}
