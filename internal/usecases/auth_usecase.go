package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/domain/repositories"
	"vox-market.backend/pkg/crypto"
	"vox-market.backend/pkg/jwt"
	"vox-market.backend/pkg/redis"
)

// SessionStore persists issued tokens server-side for cookie-less clients
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles registration, login and session business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	vendorRepo repositories.VendorProfileRepository
	uow        repositories.UnitOfWork
	session    *jwt.SessionService
	store      SessionStore
	maxAge     time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	vendorRepo repositories.VendorProfileRepository,
	uow repositories.UnitOfWork,
	session *jwt.SessionService,
	store SessionStore,
	maxAge time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		uow:        uow,
		session:    session,
		store:      store,
		maxAge:     maxAge,
	}
}

// RegisterCustomer creates a CUSTOMER account
func (u *AuthUsecase) RegisterCustomer(ctx context.Context, input *entities.RegisterCustomerInput) (*entities.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.BadRequest("name, email and password are required")
	}

	if err := u.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleCustomer,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RegisterVendor creates a VENDOR account together with its PENDING profile.
// Both rows are written in one transaction; a profile failure rolls the
// user back too.
func (u *AuthUsecase) RegisterVendor(ctx context.Context, input *entities.RegisterVendorInput) (*entities.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.BusinessName == "" {
		return nil, domainerrors.BadRequest("name, email, password and businessName are required")
	}

	if err := u.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleVendor,
	}

	profile := &entities.VendorProfile{
		BusinessName:        input.BusinessName,
		Email:               input.Email,
		BusinessDescription: null.NewString(input.BusinessDescription, input.BusinessDescription != ""),
		PhoneNumber:         null.NewString(input.PhoneNumber, input.PhoneNumber != ""),
		Address:             null.NewString(input.Address, input.Address != ""),
		VerificationStatus:  entities.VerificationPending,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		profile.UserID = null.StringFrom(user.ID.String())
		return u.vendorRepo.Create(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	user.VendorProfile = profile
	return user, nil
}

// Login verifies credentials and issues a session token. Vendors whose
// profile is not yet VERIFIED are refused with a dedicated code.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Role == entities.UserRoleVendor {
		profile, err := u.vendorRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if profile != nil {
			switch profile.VerificationStatus {
			case entities.VerificationPending:
				return nil, domainerrors.ErrVendorPending
			case entities.VerificationRejected:
				return nil, domainerrors.ErrVendorRejected
			}
			user.VendorProfile = profile
		}
	}

	token, err := u.session.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		Token: token,
		User:  user,
	}

	if input.UseSession && u.store != nil {
		sessionID, err := crypto.GenerateSessionID()
		if err != nil {
			return nil, err
		}
		if err := u.store.CreateSession(ctx, sessionID, &redis.SessionData{Token: token}, u.maxAge); err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
	}

	return resp, nil
}

// Signout deletes the server-side session if one exists
func (u *AuthUsecase) Signout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.store == nil {
		return nil
	}
	return u.store.DeleteSession(ctx, sessionID)
}

// CurrentUser loads the authenticated user, vendor profile included
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == entities.UserRoleVendor {
		profile, err := u.vendorRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		user.VendorProfile = profile
	}

	return user, nil
}

func (u *AuthUsecase) ensureEmailFree(ctx context.Context, email string) error {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}
