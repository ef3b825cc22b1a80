package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents a vendor profile's verification lifecycle
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// Terminal reports whether no further vendor-level transition is allowed
func (s VerificationStatus) Terminal() bool {
	return s == VerificationVerified || s == VerificationRejected
}

// DocumentStatus represents an uploaded document's review lifecycle.
// The document flow keeps its own lowercase vocabulary; only the profile
// column is canonicalized to VerificationStatus (see DESIGN.md).
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// ReviewAction is an admin decision on a vendor or a document
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

// Valid reports whether the action is one of the two literals
func (a ReviewAction) Valid() bool {
	return a == ActionApprove || a == ActionReject
}

// VendorProfile represents a vendor's business identity under review.
// UserID is null for profiles created through the standalone profile API.
type VendorProfile struct {
	ID                  uuid.UUID          `json:"id"`
	UserID              null.String        `json:"userId,omitempty"`
	BusinessName        string             `json:"businessName"`
	Email               string             `json:"email"`
	BusinessDescription null.String        `json:"businessDescription,omitempty"`
	PhoneNumber         null.String        `json:"phoneNumber,omitempty"`
	Address             null.String        `json:"address,omitempty"`
	ContactPerson       null.String        `json:"contactPerson,omitempty"`
	VerificationStatus  VerificationStatus `json:"verificationStatus"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
	DeletedAt           null.Time          `json:"-"`
}

// VendorDocument represents an uploaded artifact submitted for review
type VendorDocument struct {
	ID            uuid.UUID      `json:"id"`
	VendorID      uuid.UUID      `json:"vendorId"`
	FileName      string         `json:"fileName"`
	FileSize      int64          `json:"fileSize"`
	FileType      string         `json:"fileType"`
	FilePath      string         `json:"filePath"`
	Status        DocumentStatus `json:"status"`
	ReviewerNotes null.String    `json:"reviewerNotes,omitempty"`
	UploadedAt    time.Time      `json:"uploadedAt"`
	ReviewedAt    null.Time      `json:"reviewedAt,omitempty"`
	Vendor        *VendorProfile `json:"vendor,omitempty"`
}

// CreateProfileInput represents input for the standalone vendor profile API
type CreateProfileInput struct {
	VendorName    string `json:"vendorName"`
	Email         string `json:"email"`
	ContactPerson string `json:"contactPerson"`
}

// DecideVendorInput represents an admin decision on a vendor profile
type DecideVendorInput struct {
	VendorID string       `json:"vendorId"`
	Action   ReviewAction `json:"action"`
}

// DecideDocumentInput represents an admin decision on a document
type DecideDocumentInput struct {
	DocumentID    string       `json:"documentId"`
	Action        ReviewAction `json:"action"`
	ReviewerNotes string       `json:"reviewerNotes"`
}
