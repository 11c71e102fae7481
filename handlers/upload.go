// File: handlers/upload.go
package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"oncall/config"
	"oncall/models"
	"oncall/services/extraction"
	"oncall/services/schedule"
	"oncall/services/storage"
	"oncall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const archiveTimeout = 30 * time.Second

// UploadHandler serves the image-to-shifts extraction endpoints.
type UploadHandler struct {
	ExtractionSvc extraction.ExtractionService
	ScheduleSvc   schedule.ScheduleService
	// Archive is optional; when nil, uploaded images are not kept.
	Archive storage.ArchiveService
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(extractionSvc extraction.ExtractionService, scheduleSvc schedule.ScheduleService, archive storage.ArchiveService) *UploadHandler {
	return &UploadHandler{
		ExtractionSvc: extractionSvc,
		ScheduleSvc:   scheduleSvc,
		Archive:       archive,
	}
}

// readImages pulls the uploaded files out of the multipart form and enforces
// the size and media-type limits before anything reaches the pipeline.
func readImages(c *gin.Context) ([]models.ImagePayload, string) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, "invalid multipart form"
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, "at least one image is required"
	}
	maxImages := config.AppConfig.MaxUploadImages
	if maxImages > 0 && len(files) > maxImages {
		return nil, "too many images"
	}

	maxBytes := config.AppConfig.MaxUploadBytes
	images := make([]models.ImagePayload, 0, len(files))
	for _, fh := range files {
		if maxBytes > 0 && fh.Size > maxBytes {
			return nil, "image " + fh.Filename + " is too large"
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "failed to read image " + fh.Filename
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, "failed to read image " + fh.Filename
		}

		// Sniff the media type rather than trusting the client header.
		mediaType := http.DetectContentType(data)
		if idx := strings.Index(mediaType, ";"); idx >= 0 {
			mediaType = mediaType[:idx]
		}
		if !models.AllowedImageTypes[mediaType] {
			return nil, "unsupported image type for " + fh.Filename
		}
		images = append(images, models.ImagePayload{Data: data, MediaType: mediaType})
	}
	return images, ""
}

// ExtractShiftsHandler handles POST /api/uploads. It runs the extraction
// pipeline and returns either the extracted shifts for review or the
// pipeline's error list. Nothing is persisted here.
func (h *UploadHandler) ExtractShiftsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	residentName := strings.TrimSpace(c.PostForm("residentName"))
	if residentName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "residentName is required"})
		return
	}
	images, errMsg := readImages(c)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	req := models.ShiftExtractionRequest{
		ResidentName: residentName,
		ExtraContext: c.PostForm("context"),
		Images:       images,
	}

	shifts, extractErrs := h.ExtractionSvc.ExtractShifts(c.Request.Context(), req)
	if len(extractErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": extractErrs})
		return
	}

	// Keep the source images so the user can revisit them later. Best
	// effort; the extraction result stands either way.
	if h.Archive != nil {
		go func(userID string, images []models.ImagePayload) {
			ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
			defer cancel()
			if _, err := h.Archive.ArchiveImages(ctx, userID, images); err != nil {
				utils.GetLogger().Warn("ExtractShiftsHandler: failed to archive images", zap.Error(err))
			}
		}(userID, images)
	}

	if len(shifts) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"shifts":  []models.ExtractedShift{},
			"message": "No shifts were found for this resident.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

// ImportShiftsRequest is the payload for POST /api/uploads/import.
type ImportShiftsRequest struct {
	ScheduleID string                  `json:"scheduleId" binding:"required"`
	Shifts     []models.ExtractedShift `json:"shifts" binding:"required"`
}

// ImportShiftsHandler handles POST /api/uploads/import: persists reviewed
// extraction results into a schedule.
func (h *UploadHandler) ImportShiftsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req ImportShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	shifts, err := h.ScheduleSvc.ImportShifts(userID, req.ScheduleID, req.Shifts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shifts": shifts})
}
