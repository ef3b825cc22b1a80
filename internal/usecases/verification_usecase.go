package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/domain/repositories"
	"vox-market.backend/internal/infrastructure/mailer"
)

// VerificationUsecase handles admin review of vendors and their documents
type VerificationUsecase struct {
	vendorRepo repositories.VendorProfileRepository
	docRepo    repositories.VendorDocumentRepository
	uow        repositories.UnitOfWork
	mail       mailer.Mailer
	log        *zap.Logger
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	vendorRepo repositories.VendorProfileRepository,
	docRepo repositories.VendorDocumentRepository,
	uow repositories.UnitOfWork,
	mail mailer.Mailer,
	log *zap.Logger,
) *VerificationUsecase {
	return &VerificationUsecase{
		vendorRepo: vendorRepo,
		docRepo:    docRepo,
		uow:        uow,
		mail:       mail,
		log:        log,
	}
}

// DecideVendor moves a PENDING vendor profile to VERIFIED or REJECTED.
// A profile already decided is reported as a conflict, never overwritten.
func (u *VerificationUsecase) DecideVendor(ctx context.Context, input *entities.DecideVendorInput) (*entities.VendorProfile, error) {
	if input.VendorID == "" || !input.Action.Valid() {
		return nil, domainerrors.BadRequest("vendorId and action (approve|reject) are required")
	}

	vendorID, err := uuid.Parse(input.VendorID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid vendorId")
	}

	target := entities.VerificationVerified
	if input.Action == entities.ActionReject {
		target = entities.VerificationRejected
	}

	if err := u.vendorRepo.UpdateStatusFrom(ctx, vendorID, entities.VerificationPending, target); err != nil {
		return nil, err
	}

	return u.vendorRepo.GetByID(ctx, vendorID)
}

// ListDocuments lists submitted documents, optionally filtered by status,
// newest first and with their vendor attached
func (u *VerificationUsecase) ListDocuments(ctx context.Context, status entities.DocumentStatus) ([]*entities.VendorDocument, error) {
	switch status {
	case "", entities.DocumentPending, entities.DocumentApproved, entities.DocumentRejected:
	default:
		return nil, domainerrors.BadRequest("invalid status filter")
	}
	return u.docRepo.ListByStatus(ctx, status)
}

// DecideDocument moves a pending document to approved or rejected. Approval
// cascades the vendor profile to VERIFIED in the same transaction; the
// outcome email is sent after commit and never rolls the decision back.
func (u *VerificationUsecase) DecideDocument(ctx context.Context, input *entities.DecideDocumentInput) (*entities.VendorDocument, error) {
	if input.DocumentID == "" || !input.Action.Valid() {
		return nil, domainerrors.BadRequest("documentId and action (approve|reject) are required")
	}

	docID, err := uuid.Parse(input.DocumentID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid documentId")
	}

	doc, err := u.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	target := entities.DocumentApproved
	if input.Action == entities.ActionReject {
		target = entities.DocumentRejected
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.docRepo.Decide(ctx, docID, target, input.ReviewerNotes, time.Now()); err != nil {
			return err
		}
		if target == entities.DocumentApproved {
			return u.vendorRepo.UpdateStatus(ctx, doc.VendorID, entities.VerificationVerified)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	decided, err := u.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	u.notifyVendor(ctx, decided, target, input.ReviewerNotes)

	return decided, nil
}

func (u *VerificationUsecase) notifyVendor(ctx context.Context, doc *entities.VendorDocument, target entities.DocumentStatus, notes string) {
	if doc.Vendor == nil {
		return
	}

	var msg mailer.Message
	if target == entities.DocumentApproved {
		msg = mailer.DocumentApprovedMessage(doc.Vendor.BusinessName, doc.Vendor.Email)
	} else {
		msg = mailer.DocumentRejectedMessage(doc.Vendor.BusinessName, doc.Vendor.Email, notes)
	}

	if err := u.mail.Send(ctx, msg); err != nil {
		u.log.Error("failed to send document review email",
			zap.String("documentId", doc.ID.String()),
			zap.String("vendorEmail", doc.Vendor.Email),
			zap.Error(err),
		)
	}
}
