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

// VendorProfileRepository implements vendor profile data operations
type VendorProfileRepository struct {
	db *gorm.DB
}

// NewVendorProfileRepository creates a new vendor profile repository
func NewVendorProfileRepository(db *gorm.DB) *VendorProfileRepository {
	return &VendorProfileRepository{db: db}
}

// Create creates a new vendor profile
func (r *VendorProfileRepository) Create(ctx context.Context, profile *entities.VendorProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.VerificationStatus == "" {
		profile.VerificationStatus = entities.VerificationPending
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	m := &models.VendorProfile{
		ID:                  profile.ID,
		BusinessName:        profile.BusinessName,
		Email:               profile.Email,
		BusinessDescription: strPtr(profile.BusinessDescription),
		PhoneNumber:         strPtr(profile.PhoneNumber),
		Address:             strPtr(profile.Address),
		ContactPerson:       strPtr(profile.ContactPerson),
		VerificationStatus:  string(profile.VerificationStatus),
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
	}
	if profile.UserID.Valid {
		userID, err := uuid.Parse(profile.UserID.String)
		if err != nil {
			return domainerrors.ErrInvalidInput
		}
		m.UserID = &userID
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a vendor profile by ID
func (r *VendorProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorProfile, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUserID gets a vendor profile by owning user ID
func (r *VendorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.VendorProfile, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

// GetByEmail gets a vendor profile by email
func (r *VendorProfileRepository) GetByEmail(ctx context.Context, email string) (*entities.VendorProfile, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *VendorProfileRepository) getOne(ctx context.Context, cond string, arg interface{}) (*entities.VendorProfile, error) {
	var m models.VendorProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(cond, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// UpdateStatus sets the verification status unconditionally
func (r *VendorProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VendorProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status": string(status),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatusFrom sets the verification status only when the current status
// matches from, so concurrent decisions on the same vendor fail instead of
// overwriting each other.
func (r *VendorProfileRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entities.VerificationStatus) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.VendorProfile{}).
		Where("id = ? AND verification_status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"verification_status": string(to),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.VendorProfile{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

// List lists all vendor profiles, newest first
func (r *VendorProfileRepository) List(ctx context.Context) ([]*entities.VendorProfile, error) {
	var profileModels []models.VendorProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entities.VendorProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, profileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

func profileToEntity(m *models.VendorProfile) *entities.VendorProfile {
	p := &entities.VendorProfile{
		ID:                  m.ID,
		BusinessName:        m.BusinessName,
		Email:               m.Email,
		BusinessDescription: null.StringFromPtr(m.BusinessDescription),
		PhoneNumber:         null.StringFromPtr(m.PhoneNumber),
		Address:             null.StringFromPtr(m.Address),
		ContactPerson:       null.StringFromPtr(m.ContactPerson),
		VerificationStatus:  entities.VerificationStatus(m.VerificationStatus),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.UserID != nil {
		p.UserID = null.StringFrom(m.UserID.String())
	}
	return p
}

func strPtr(s null.String) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
