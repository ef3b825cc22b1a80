package usecases

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"vox-market.backend/internal/config"
	"vox-market.backend/internal/domain/entities"
	domainerrors "vox-market.backend/internal/domain/errors"
)

const testAdminEmail = "admin@vox.local"

func newDocumentUsecaseForTest(vendors *stubVendorRepo, docs *stubDocRepo, sink *stubSink, mail *recordingMailer, cfg config.StorageConfig) *DocumentUsecase {
	return NewDocumentUsecase(vendors, docs, sink, mail, cfg, testAdminEmail, zap.NewNop())
}

func TestDocumentUsecase_UploadHappyPath(t *testing.T) {
	vendors := newStubVendorRepo()
	docs := newStubDocRepo()
	sink := &stubSink{}
	mail := &recordingMailer{}
	u := newDocumentUsecaseForTest(vendors, docs, sink, mail, config.StorageConfig{MaxFileSize: 1024})
	ctx := context.Background()

	vendor := seedProfile(t, vendors, "up@example.com")

	doc, err := u.Upload(ctx, &UploadDocumentInput{
		VendorID: vendor.ID.String(),
		FileName: "license.pdf",
		FileType: "application/pdf",
		Data:     []byte("pdf bytes"),
	})
	require.NoError(t, err)
	require.Equal(t, entities.DocumentPending, doc.Status)
	require.Equal(t, "stored/license.pdf", doc.FilePath)
	require.Equal(t, int64(len("pdf bytes")), doc.FileSize)
	require.Equal(t, []string{"license.pdf"}, sink.uploads)

	require.Len(t, mail.sent, 1)
	require.Equal(t, testAdminEmail, mail.sent[0].To)
	require.Contains(t, mail.sent[0].Subject, vendor.BusinessName)
}

func TestDocumentUsecase_UploadUnknownVendor(t *testing.T) {
	u := newDocumentUsecaseForTest(newStubVendorRepo(), newStubDocRepo(), &stubSink{}, &recordingMailer{}, config.StorageConfig{MaxFileSize: 1024})

	_, err := u.Upload(context.Background(), &UploadDocumentInput{
		VendorID: uuid.New().String(),
		FileName: "a.pdf",
		FileType: "application/pdf",
		Data:     []byte("x"),
	})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDocumentUsecase_UploadValidation(t *testing.T) {
	vendors := newStubVendorRepo()
	sink := &stubSink{}
	u := newDocumentUsecaseForTest(vendors, newStubDocRepo(), sink, &recordingMailer{}, config.StorageConfig{
		MaxFileSize:      8,
		AllowedFileTypes: []string{"application/pdf"},
	})
	ctx := context.Background()
	vendor := seedProfile(t, vendors, "val@example.com")

	// missing parts
	_, err := u.Upload(ctx, &UploadDocumentInput{FileName: "a.pdf"})
	requireValidationError(t, err)
	_, err = u.Upload(ctx, &UploadDocumentInput{VendorID: vendor.ID.String()})
	requireValidationError(t, err)

	// bad uuid
	_, err = u.Upload(ctx, &UploadDocumentInput{VendorID: "nope", FileName: "a.pdf", Data: []byte("x")})
	requireValidationError(t, err)

	// size checked before the sink is called
	_, err = u.Upload(ctx, &UploadDocumentInput{
		VendorID: vendor.ID.String(),
		FileName: "big.pdf",
		FileType: "application/pdf",
		Data:     bytes.Repeat([]byte("x"), 9),
	})
	requireValidationError(t, err)

	// type outside the allow-list
	_, err = u.Upload(ctx, &UploadDocumentInput{
		VendorID: vendor.ID.String(),
		FileName: "pic.png",
		FileType: "image/png",
		Data:     []byte("x"),
	})
	requireValidationError(t, err)

	require.Empty(t, sink.uploads)
}

func TestDocumentUsecase_EmptyAllowListAcceptsAnyType(t *testing.T) {
	vendors := newStubVendorRepo()
	u := newDocumentUsecaseForTest(vendors, newStubDocRepo(), &stubSink{}, &recordingMailer{}, config.StorageConfig{MaxFileSize: 1024})
	vendor := seedProfile(t, vendors, "any@example.com")

	_, err := u.Upload(context.Background(), &UploadDocumentInput{
		VendorID: vendor.ID.String(),
		FileName: "pic.png",
		FileType: "image/png",
		Data:     []byte("x"),
	})
	require.NoError(t, err)
}

func TestDocumentUsecase_SinkFailureSurfaces(t *testing.T) {
	vendors := newStubVendorRepo()
	docs := newStubDocRepo()
	sink := &stubSink{uploadErr: errors.New("disk full")}
	u := newDocumentUsecaseForTest(vendors, docs, sink, &recordingMailer{}, config.StorageConfig{MaxFileSize: 1024})
	vendor := seedProfile(t, vendors, "sink@example.com")

	_, err := u.Upload(context.Background(), &UploadDocumentInput{
		VendorID: vendor.ID.String(),
		FileName: "a.pdf",
		FileType: "application/pdf",
		Data:     []byte("x"),
	})
	require.Error(t, err)
	require.Empty(t, docs.docs)
}

func TestDocumentUsecase_AdminMailFailureIsSwallowed(t *testing.T) {
	vendors := newStubVendorRepo()
	docs := newStubDocRepo()
	mail := &recordingMailer{sendErr: errors.New("smtp down")}
	u := newDocumentUsecaseForTest(vendors, docs, &stubSink{}, mail, config.StorageConfig{MaxFileSize: 1024})
	vendor := seedProfile(t, vendors, "mail@example.com")

	doc, err := u.Upload(context.Background(), &UploadDocumentInput{
		VendorID: vendor.ID.String(),
		FileName: "a.pdf",
		FileType: "application/pdf",
		Data:     []byte("x"),
	})
	require.NoError(t, err)
	require.Contains(t, docs.docs, doc.ID)
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeValidation, appErr.Code)
}
