// File: services/storage/cloudinary.go
package storage

import (
	"bytes"
	"context"
	"fmt"

	"oncall/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryArchiveService implements ArchiveService using Cloudinary.
type CloudinaryArchiveService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryArchiveService initializes the service from a
// cloudinary:// URL.
func NewCloudinaryArchiveService(cloudinaryURL string) (*CloudinaryArchiveService, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary url is not configured")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryArchiveService{cld: cld}, nil
}

// ArchiveImages uploads each image under uploads/<userID>/ and returns the
// stored URLs in upload order.
func (s *CloudinaryArchiveService) ArchiveImages(ctx context.Context, userID string, images []models.ImagePayload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(img.Data), uploader.UploadParams{
			Folder:   "uploads/" + userID,
			PublicID: uuid.New().String(),
		})
		if err != nil {
			return urls, fmt.Errorf("failed to archive image: %w", err)
		}
		urls = append(urls, resp.SecureURL)
	}
	return urls, nil
}
