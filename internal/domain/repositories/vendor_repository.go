package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"vox-market.backend/internal/domain/entities"
)

// VendorProfileRepository defines vendor profile data operations
type VendorProfileRepository interface {
	Create(ctx context.Context, profile *entities.VendorProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.VendorProfile, error)
	GetByEmail(ctx context.Context, email string) (*entities.VendorProfile, error)
	// UpdateStatus sets the verification status unconditionally. Used by the
	// document-approval cascade, which is idempotent in effect.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error
	// UpdateStatusFrom sets the verification status only when the current
	// status matches from. Returns ErrInvalidTransition when the row exists
	// but is no longer in the expected state.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entities.VerificationStatus) error
	List(ctx context.Context) ([]*entities.VendorProfile, error)
}

// VendorDocumentRepository defines vendor document data operations
type VendorDocumentRepository interface {
	Create(ctx context.Context, doc *entities.VendorDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorDocument, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entities.VendorDocument, error)
	// ListByStatus lists documents newest first, including their vendor.
	// An empty status lists every document.
	ListByStatus(ctx context.Context, status entities.DocumentStatus) ([]*entities.VendorDocument, error)
	// Decide moves a pending document to a terminal status, storing the
	// reviewer notes and review time. Returns ErrInvalidTransition when the
	// document exists but has already been decided.
	Decide(ctx context.Context, id uuid.UUID, status entities.DocumentStatus, notes string, reviewedAt time.Time) error
}
