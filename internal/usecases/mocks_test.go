package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/infrastructure/mailer"
	"vox-market.backend/internal/infrastructure/storage"
	"vox-market.backend/pkg/redis"
)

// In-memory stubs for the repository interfaces. Error fields force the
// corresponding call to fail.

type stubUserRepo struct {
	users     map[string]*entities.User
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entities.User)}
}

func (s *stubUserRepo) Create(_ context.Context, user *entities.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) List(_ context.Context, _ string) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

type stubVendorRepo struct {
	profiles  map[uuid.UUID]*entities.VendorProfile
	createErr error
	updateErr error
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{profiles: make(map[uuid.UUID]*entities.VendorProfile)}
}

func (s *stubVendorRepo) Create(_ context.Context, profile *entities.VendorProfile) error {
	if s.createErr != nil {
		return s.createErr
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.VerificationStatus == "" {
		profile.VerificationStatus = entities.VerificationPending
	}
	s.profiles[profile.ID] = profile
	return nil
}

func (s *stubVendorRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.VendorProfile, error) {
	if p, ok := s.profiles[id]; ok {
		return p, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubVendorRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.VendorProfile, error) {
	for _, p := range s.profiles {
		if p.UserID.Valid && p.UserID.String == userID.String() {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubVendorRepo) GetByEmail(_ context.Context, email string) (*entities.VendorProfile, error) {
	for _, p := range s.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubVendorRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	p, ok := s.profiles[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	p.VerificationStatus = status
	return nil
}

func (s *stubVendorRepo) UpdateStatusFrom(_ context.Context, id uuid.UUID, from, to entities.VerificationStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	p, ok := s.profiles[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if p.VerificationStatus != from {
		return domainerrors.ErrInvalidTransition
	}
	p.VerificationStatus = to
	return nil
}

func (s *stubVendorRepo) List(_ context.Context) ([]*entities.VendorProfile, error) {
	out := make([]*entities.VendorProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out, nil
}

type stubDocRepo struct {
	docs      map[uuid.UUID]*entities.VendorDocument
	createErr error
	decideErr error
}

func newStubDocRepo() *stubDocRepo {
	return &stubDocRepo{docs: make(map[uuid.UUID]*entities.VendorDocument)}
}

func (s *stubDocRepo) Create(_ context.Context, doc *entities.VendorDocument) error {
	if s.createErr != nil {
		return s.createErr
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Status == "" {
		doc.Status = entities.DocumentPending
	}
	s.docs[doc.ID] = doc
	return nil
}

func (s *stubDocRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.VendorDocument, error) {
	if d, ok := s.docs[id]; ok {
		return d, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubDocRepo) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]*entities.VendorDocument, error) {
	out := make([]*entities.VendorDocument, 0)
	for _, d := range s.docs {
		if d.VendorID == vendorID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDocRepo) ListByStatus(_ context.Context, status entities.DocumentStatus) ([]*entities.VendorDocument, error) {
	out := make([]*entities.VendorDocument, 0)
	for _, d := range s.docs {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDocRepo) Decide(_ context.Context, id uuid.UUID, status entities.DocumentStatus, notes string, reviewedAt time.Time) error {
	if s.decideErr != nil {
		return s.decideErr
	}
	d, ok := s.docs[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if d.Status != entities.DocumentPending {
		return domainerrors.ErrInvalidTransition
	}
	d.Status = status
	if notes != "" {
		d.ReviewerNotes.SetValid(notes)
	}
	d.ReviewedAt.SetValid(reviewedAt)
	return nil
}

// passthroughUOW runs the unit without a real transaction
type passthroughUOW struct {
	err error
}

func (u *passthroughUOW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.err != nil {
		return u.err
	}
	return fn(ctx)
}

// recordingMailer captures sent messages
type recordingMailer struct {
	sent    []mailer.Message
	sendErr error
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

// stubSessionStore records created and deleted sessions
type stubSessionStore struct {
	created   map[string]*redis.SessionData
	deleted   []string
	createErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{created: make(map[string]*redis.SessionData)}
}

func (s *stubSessionStore) CreateSession(_ context.Context, sessionID string, data *redis.SessionData, _ time.Duration) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created[sessionID] = data
	return nil
}

func (s *stubSessionStore) DeleteSession(_ context.Context, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	return nil
}

// stubSink records uploads without touching storage
type stubSink struct {
	uploads   []string
	uploadErr error
}

func (s *stubSink) Upload(_ context.Context, data []byte, fileName, fileType string) (*storage.UploadResult, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads = append(s.uploads, fileName)
	return &storage.UploadResult{Path: "stored/" + fileName, Size: int64(len(data)), Type: fileType}, nil
}
