package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"vox-market.backend/internal/domain/entities"
)

func doUpload(t *testing.T, ts *testServer, vendorID, fileName, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if fileName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	if vendorID != "" {
		require.NoError(t, mw.WriteField("vendorId", vendorID))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestVendorHandler_Upload(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "up@example.com")

	w := doUpload(t, ts, vendor.ID.String(), "trade license.pdf", "application/pdf", []byte("pdf bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	docID, err := uuid.Parse(decodeBody(t, w)["documentId"].(string))
	require.NoError(t, err)

	doc, err := ts.docRepo.GetByID(testCtx(), docID)
	require.NoError(t, err)
	require.Equal(t, entities.DocumentPending, doc.Status)
	require.Equal(t, "trade license.pdf", doc.FileName)
	// stored name is sanitized, the record keeps the original
	require.NotContains(t, doc.FilePath, " ")
}

func TestVendorHandler_UploadErrors(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "err@example.com")

	// missing file part
	w := doUpload(t, ts, vendor.ID.String(), "", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// missing vendorId
	w = doUpload(t, ts, "", "a.pdf", "application/pdf", []byte("x"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	// unknown vendor
	w = doUpload(t, ts, uuid.New().String(), "a.pdf", "application/pdf", []byte("x"))
	require.Equal(t, http.StatusNotFound, w.Code)

	// oversize payload (helper server caps at 1 MiB)
	w = doUpload(t, ts, vendor.ID.String(), "big.pdf", "application/pdf", bytes.Repeat([]byte("x"), (1<<20)+1))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVendorHandler_CreateProfile(t *testing.T) {
	ts := newTestServer(t)

	w := doJSON(t, ts, http.MethodPost, "/api/v1/vendor/profile", map[string]string{
		"vendorName": "Acme", "email": "acme@example.com", "contactPerson": "Pat",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	firstID := decodeBody(t, w)["vendorId"].(string)

	// repeated email returns the same id
	w = doJSON(t, ts, http.MethodPost, "/api/v1/vendor/profile", map[string]string{
		"vendorName": "Acme Again", "email": "acme@example.com",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, firstID, decodeBody(t, w)["vendorId"].(string))

	// missing fields
	w = doJSON(t, ts, http.MethodPost, "/api/v1/vendor/profile", map[string]string{
		"vendorName": "No Email",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVendorHandler_GetProfile(t *testing.T) {
	ts := newTestServer(t)
	vendor := seedVendorProfile(t, ts, "get@example.com")
	seedPendingDocument(t, ts, vendor)

	w := doJSON(t, ts, http.MethodGet, "/api/v1/vendor/profile?email=get@example.com", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, vendor.ID.String(), body["vendor"].(map[string]interface{})["id"])
	require.Len(t, body["documents"].([]interface{}), 1)

	w = doJSON(t, ts, http.MethodGet, "/api/v1/vendor/profile", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, ts, http.MethodGet, "/api/v1/vendor/profile?email=ghost@example.com", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
