package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/infrastructure/models"
)

// VendorDocumentRepository implements vendor document data operations
type VendorDocumentRepository struct {
	db *gorm.DB
}

// NewVendorDocumentRepository creates a new vendor document repository
func NewVendorDocumentRepository(db *gorm.DB) *VendorDocumentRepository {
	return &VendorDocumentRepository{db: db}
}

// Create creates a new vendor document with status pending
func (r *VendorDocumentRepository) Create(ctx context.Context, doc *entities.VendorDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Status == "" {
		doc.Status = entities.DocumentPending
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}

	m := &models.VendorDocument{
		ID:         doc.ID,
		VendorID:   doc.VendorID,
		FileName:   doc.FileName,
		FileSize:   doc.FileSize,
		FileType:   doc.FileType,
		FilePath:   doc.FilePath,
		Status:     string(doc.Status),
		UploadedAt: doc.UploadedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a document by ID, including its vendor
func (r *VendorDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorDocument, error) {
	var m models.VendorDocument
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	doc := documentToEntity(&m)

	var vm models.VendorProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", m.VendorID).First(&vm).Error; err == nil {
		doc.Vendor = profileToEntity(&vm)
	}
	return doc, nil
}

// ListByVendor lists a vendor's documents, newest first
func (r *VendorDocumentRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entities.VendorDocument, error) {
	var docModels []models.VendorDocument
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("uploaded_at DESC").
		Find(&docModels).Error
	if err != nil {
		return nil, err
	}

	docs := make([]*entities.VendorDocument, 0, len(docModels))
	for i := range docModels {
		docs = append(docs, documentToEntity(&docModels[i]))
	}
	return docs, nil
}

// ListByStatus lists documents newest first, including their vendor.
// An empty status lists every document.
func (r *VendorDocumentRepository) ListByStatus(ctx context.Context, status entities.DocumentStatus) ([]*entities.VendorDocument, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var docModels []models.VendorDocument
	query := db.Order("uploaded_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if err := query.Find(&docModels).Error; err != nil {
		return nil, err
	}

	docs := make([]*entities.VendorDocument, 0, len(docModels))
	vendorIDs := make([]uuid.UUID, 0, len(docModels))
	seen := make(map[uuid.UUID]bool)
	for i := range docModels {
		docs = append(docs, documentToEntity(&docModels[i]))
		if !seen[docModels[i].VendorID] {
			seen[docModels[i].VendorID] = true
			vendorIDs = append(vendorIDs, docModels[i].VendorID)
		}
	}

	if len(vendorIDs) > 0 {
		var profileModels []models.VendorProfile
		if err := db.Where("id IN ?", vendorIDs).Find(&profileModels).Error; err != nil {
			return nil, err
		}
		profiles := make(map[uuid.UUID]*entities.VendorProfile, len(profileModels))
		for i := range profileModels {
			profiles[profileModels[i].ID] = profileToEntity(&profileModels[i])
		}
		for _, d := range docs {
			d.Vendor = profiles[d.VendorID]
		}
	}

	return docs, nil
}

// Decide moves a pending document to a terminal status. The WHERE clause
// pins the expected prior state so a second decision fails instead of
// overwriting the first.
func (r *VendorDocumentRepository) Decide(ctx context.Context, id uuid.UUID, status entities.DocumentStatus, notes string, reviewedAt time.Time) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	updates := map[string]interface{}{
		"status":      string(status),
		"reviewed_at": reviewedAt,
	}
	if notes != "" {
		updates["reviewer_notes"] = notes
	}

	result := db.Model(&models.VendorDocument{}).
		Where("id = ? AND status = ?", id, string(entities.DocumentPending)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.VendorDocument{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

func documentToEntity(m *models.VendorDocument) *entities.VendorDocument {
	d := &entities.VendorDocument{
		ID:            m.ID,
		VendorID:      m.VendorID,
		FileName:      m.FileName,
		FileSize:      m.FileSize,
		FileType:      m.FileType,
		FilePath:      m.FilePath,
		Status:        entities.DocumentStatus(m.Status),
		ReviewerNotes: null.StringFromPtr(m.ReviewerNotes),
		UploadedAt:    m.UploadedAt,
	}
	if m.ReviewedAt != nil {
		d.ReviewedAt = null.TimeFrom(*m.ReviewedAt)
	}
	return d
}
