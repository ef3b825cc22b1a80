package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vox-market.backend/internal/config"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/domain/repositories"
	"vox-market.backend/internal/infrastructure/mailer"
	"vox-market.backend/internal/infrastructure/storage"
)

// UploadDocumentInput carries one multipart upload
type UploadDocumentInput struct {
	VendorID string
	FileName string
	FileType string
	Data     []byte
}

// DocumentUsecase handles vendor document intake
type DocumentUsecase struct {
	vendorRepo repositories.VendorProfileRepository
	docRepo    repositories.VendorDocumentRepository
	sink       storage.Sink
	mail       mailer.Mailer
	cfg        config.StorageConfig
	adminEmail string
	log        *zap.Logger
}

// NewDocumentUsecase creates a new document usecase
func NewDocumentUsecase(
	vendorRepo repositories.VendorProfileRepository,
	docRepo repositories.VendorDocumentRepository,
	sink storage.Sink,
	mail mailer.Mailer,
	cfg config.StorageConfig,
	adminEmail string,
	log *zap.Logger,
) *DocumentUsecase {
	return &DocumentUsecase{
		vendorRepo: vendorRepo,
		docRepo:    docRepo,
		sink:       sink,
		mail:       mail,
		cfg:        cfg,
		adminEmail: adminEmail,
		log:        log,
	}
}

// Upload validates and stores a verification document for a vendor, records
// it as pending and notifies the admin address. Size and type are checked
// before the sink is touched; the admin email is best-effort.
func (u *DocumentUsecase) Upload(ctx context.Context, input *UploadDocumentInput) (*entities.VendorDocument, error) {
	if input.VendorID == "" || input.FileName == "" {
		return nil, domainerrors.BadRequest("vendorId and file are required")
	}

	vendorID, err := uuid.Parse(input.VendorID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid vendorId")
	}

	vendor, err := u.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if int64(len(input.Data)) > u.cfg.MaxFileSize {
		return nil, domainerrors.BadRequest(fmt.Sprintf("file exceeds maximum size of %d bytes", u.cfg.MaxFileSize))
	}

	if len(u.cfg.AllowedFileTypes) > 0 && !contains(u.cfg.AllowedFileTypes, input.FileType) {
		return nil, domainerrors.BadRequest("file type not allowed")
	}

	result, err := u.sink.Upload(ctx, input.Data, input.FileName, input.FileType)
	if err != nil {
		return nil, err
	}

	doc := &entities.VendorDocument{
		VendorID: vendor.ID,
		FileName: input.FileName,
		FileSize: result.Size,
		FileType: input.FileType,
		FilePath: result.Path,
		Status:   entities.DocumentPending,
	}

	if err := u.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	msg := mailer.DocumentSubmittedMessage(vendor.BusinessName, u.adminEmail)
	if err := u.mail.Send(ctx, msg); err != nil {
		u.log.Error("failed to send submission email",
			zap.String("documentId", doc.ID.String()),
			zap.String("vendorId", vendor.ID.String()),
			zap.Error(err),
		)
	}

	return doc, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
