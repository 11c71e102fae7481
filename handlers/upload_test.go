// File: handlers/upload_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"oncall/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}

type stubExtractionService struct {
	shifts []models.ExtractedShift
	errs   []string
	gotReq models.ShiftExtractionRequest
}

func (s *stubExtractionService) ExtractShifts(ctx context.Context, req models.ShiftExtractionRequest) ([]models.ExtractedShift, []string) {
	s.gotReq = req
	return s.shifts, s.errs
}

func uploadRouter(svc *stubExtractionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUploadHandler(svc, nil, nil)
	r := gin.New()
	r.POST("/api/uploads", func(c *gin.Context) {
		c.Set("userID", "user-1")
		h.ExtractShiftsHandler(c)
	})
	return r
}

func multipartUpload(t *testing.T, residentName string, images ...[]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if residentName != "" {
		require.NoError(t, w.WriteField("residentName", residentName))
	}
	for _, img := range images {
		fw, err := w.CreateFormFile("images", "schedule.png")
		require.NoError(t, err)
		_, err = fw.Write(img)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestExtractShiftsHandlerSuccess(t *testing.T) {
	svc := &stubExtractionService{shifts: []models.ExtractedShift{
		{Kind: models.ShiftKindAllDay, Date: "2025-03-01"},
	}}
	r := uploadRouter(svc)

	body, contentType := multipartUpload(t, "J. Park", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "J. Park", svc.gotReq.ResidentName)
	require.Len(t, svc.gotReq.Images, 1)
	assert.Equal(t, "image/png", svc.gotReq.Images[0].MediaType)

	var resp struct {
		Shifts []models.ExtractedShift `json:"shifts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, "2025-03-01", resp.Shifts[0].Date)
}

func TestExtractShiftsHandlerPipelineErrors(t *testing.T) {
	svc := &stubExtractionService{errs: []string{"Resident name not found in the schedule image."}}
	r := uploadRouter(svc)

	body, contentType := multipartUpload(t, "J. Park", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Resident name not found in the schedule image."}, resp.Errors)
}

func TestExtractShiftsHandlerEmptySuccess(t *testing.T) {
	svc := &stubExtractionService{}
	r := uploadRouter(svc)

	body, contentType := multipartUpload(t, "J. Park", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No shifts were found")
}

func TestExtractShiftsHandlerRequiresResidentName(t *testing.T) {
	svc := &stubExtractionService{}
	r := uploadRouter(svc)

	body, contentType := multipartUpload(t, "", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractShiftsHandlerRejectsNonImageUpload(t *testing.T) {
	svc := &stubExtractionService{}
	r := uploadRouter(svc)

	body, contentType := multipartUpload(t, "J. Park", []byte("this is a text file pretending to be an image"))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported image type")
}

func TestExtractShiftsHandlerRequiresAnImage(t *testing.T) {
	svc := &stubExtractionService{}
	r := uploadRouter(svc)

	body, contentType := multipartUpload(t, "J. Park")
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
