package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"vox-market.backend/internal/domain/entities"
)

func issueToken(t *testing.T, ts *testServer, role string) string {
	t.Helper()
	token, err := ts.session.Issue(uuid.New(), role+"@example.com", role)
	require.NoError(t, err)
	return token
}

func seedVendorProfile(t *testing.T, ts *testServer, email string) *entities.VendorProfile {
	t.Helper()
	p := &entities.VendorProfile{BusinessName: "Vendor " + email, Email: email}
	require.NoError(t, ts.vendorRepo.Create(testCtx(), p))
	return p
}

func seedPendingDocument(t *testing.T, ts *testServer, vendor *entities.VendorProfile) *entities.VendorDocument {
	t.Helper()
	d := &entities.VendorDocument{
		VendorID: vendor.ID,
		FileName: "license.pdf",
		FileSize: 12,
		FileType: "application/pdf",
		FilePath: "stored/license.pdf",
	}
	require.NoError(t, ts.docRepo.Create(testCtx(), d))
	return d
}

func TestAdminHandler_VerifyVendorAuth(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "v@example.com")
	body := map[string]string{"vendorId": vendor.ID.String(), "action": "approve"}

	// no session
	w := doJSON(t, ts, http.MethodPost, "/api/v1/admin/verify-vendor", body, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// authenticated but not an admin
	w = doJSON(t, ts, http.MethodPost, "/api/v1/admin/verify-vendor", body, map[string]string{
		"Authorization": "Bearer " + issueToken(t, ts, "VENDOR"),
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminHandler_VerifyVendor(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "v@example.com")
	adminAuth := map[string]string{"Authorization": "Bearer " + issueToken(t, ts, "ADMIN")}

	w := doJSON(t, ts, http.MethodPost, "/api/v1/admin/verify-vendor", map[string]string{
		"vendorId": vendor.ID.String(), "action": "approve",
	}, adminAuth)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)["vendor"].(map[string]interface{})
	require.Equal(t, "VERIFIED", got["verificationStatus"])

	// deciding a terminal profile conflicts instead of overwriting
	w = doJSON(t, ts, http.MethodPost, "/api/v1/admin/verify-vendor", map[string]string{
		"vendorId": vendor.ID.String(), "action": "reject",
	}, adminAuth)
	require.Equal(t, http.StatusConflict, w.Code)

	// unknown vendor
	w = doJSON(t, ts, http.MethodPost, "/api/v1/admin/verify-vendor", map[string]string{
		"vendorId": uuid.New().String(), "action": "approve",
	}, adminAuth)
	require.Equal(t, http.StatusNotFound, w.Code)

	// bad action
	w = doJSON(t, ts, http.MethodPost, "/api/v1/admin/verify-vendor", map[string]string{
		"vendorId": vendor.ID.String(), "action": "publish",
	}, adminAuth)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_VerifyVendorReject(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "r@example.com")

	w := doJSON(t, ts, http.MethodPost, "/api/v1/admin/verify-vendor", map[string]string{
		"vendorId": vendor.ID.String(), "action": "reject",
	}, map[string]string{"Authorization": "Bearer " + issueToken(t, ts, "ADMIN")})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)["vendor"].(map[string]interface{})
	require.Equal(t, "REJECTED", got["verificationStatus"])
}

func TestAdminHandler_ListVerifications(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "list@example.com")
	seedPendingDocument(t, ts, vendor)

	w := doJSON(t, ts, http.MethodGet, "/api/v1/admin/vendor-verification", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	docs := decodeBody(t, w)["documents"].([]interface{})
	require.Len(t, docs, 1)
	first := docs[0].(map[string]interface{})
	require.Equal(t, "pending", first["status"])
	require.NotNil(t, first["vendor"])

	w = doJSON(t, ts, http.MethodGet, "/api/v1/admin/vendor-verification?status=approved", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decodeBody(t, w)["documents"])

	w = doJSON(t, ts, http.MethodGet, "/api/v1/admin/vendor-verification?status=archived", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_ApproveDocumentCascades(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "cascade@example.com")
	doc := seedPendingDocument(t, ts, vendor)

	w := doJSON(t, ts, http.MethodPost, "/api/v1/admin/vendor-verification", map[string]string{
		"documentId": doc.ID.String(), "action": "approve",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)["document"].(map[string]interface{})
	require.Equal(t, "approved", got["status"])

	profile, err := ts.vendorRepo.GetByID(testCtx(), vendor.ID)
	require.NoError(t, err)
	require.Equal(t, entities.VerificationVerified, profile.VerificationStatus)

	// second decision conflicts
	w = doJSON(t, ts, http.MethodPost, "/api/v1/admin/vendor-verification", map[string]string{
		"documentId": doc.ID.String(), "action": "reject",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_RejectDocumentStoresNotes(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "notes@example.com")
	doc := seedPendingDocument(t, ts, vendor)

	w := doJSON(t, ts, http.MethodPost, "/api/v1/admin/vendor-verification", map[string]string{
		"documentId": doc.ID.String(), "action": "reject", "reviewerNotes": "blurry scan",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)["document"].(map[string]interface{})
	require.Equal(t, "rejected", got["status"])
	require.Equal(t, "blurry scan", got["reviewerNotes"])

	// the profile stays PENDING on rejection
	profile, err := ts.vendorRepo.GetByID(testCtx(), vendor.ID)
	require.NoError(t, err)
	require.Equal(t, entities.VerificationPending, profile.VerificationStatus)
}

func TestAdminHandler_DecideDocumentErrors(t *testing.T) {
	ts := newTestServer(t)

	w := doJSON(t, ts, http.MethodPost, "/api/v1/admin/vendor-verification", map[string]string{
		"documentId": uuid.New().String(), "action": "approve",
	}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, ts, http.MethodPost, "/api/v1/admin/vendor-verification", map[string]string{
		"action": "approve",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
