package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/volatiletech/null/v8"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/domain/repositories"
)

// VendorUsecase handles the standalone vendor profile API and the
// verification gate on product management
type VendorUsecase struct {
	vendorRepo repositories.VendorProfileRepository
	docRepo    repositories.VendorDocumentRepository
}

// NewVendorUsecase creates a new vendor usecase
func NewVendorUsecase(
	vendorRepo repositories.VendorProfileRepository,
	docRepo repositories.VendorDocumentRepository,
) *VendorUsecase {
	return &VendorUsecase{
		vendorRepo: vendorRepo,
		docRepo:    docRepo,
	}
}

// CreateProfile creates a PENDING vendor profile keyed by email. Calling it
// again with an email that already has a profile returns the existing one.
func (u *VendorUsecase) CreateProfile(ctx context.Context, input *entities.CreateProfileInput) (*entities.VendorProfile, error) {
	if input.VendorName == "" || input.Email == "" {
		return nil, domainerrors.BadRequest("vendorName and email are required")
	}

	existing, err := u.vendorRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	profile := &entities.VendorProfile{
		BusinessName:       input.VendorName,
		Email:              input.Email,
		ContactPerson:      null.NewString(input.ContactPerson, input.ContactPerson != ""),
		VerificationStatus: entities.VerificationPending,
	}

	if err := u.vendorRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// GetProfile loads a vendor profile by email with its documents, newest first
func (u *VendorUsecase) GetProfile(ctx context.Context, email string) (*entities.VendorProfile, []*entities.VendorDocument, error) {
	if email == "" {
		return nil, nil, domainerrors.BadRequest("email is required")
	}

	profile, err := u.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	docs, err := u.docRepo.ListByVendor(ctx, profile.ID)
	if err != nil {
		return nil, nil, err
	}

	return profile, docs, nil
}

// RequireVerified loads the profile for an email and refuses access unless
// it is VERIFIED. The forbidden message carries the current status.
func (u *VendorUsecase) RequireVerified(ctx context.Context, email string) (*entities.VendorProfile, error) {
	if email == "" {
		return nil, domainerrors.BadRequest("vendorEmail is required")
	}

	profile, err := u.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if profile.VerificationStatus != entities.VerificationVerified {
		return nil, domainerrors.NewAppError(
			http.StatusForbidden,
			domainerrors.CodeForbidden,
			"vendor is not verified: current status is "+string(profile.VerificationStatus),
			domainerrors.ErrForbidden,
		)
	}

	return profile, nil
}
