package storage

import (
	"context"

	"oncall/models"
)

// ArchiveService stores uploaded schedule images after a successful
// extraction so a user can revisit the source of an imported schedule.
type ArchiveService interface {
	// ArchiveImages stores the images under the user's folder and returns
	// the public URLs of the stored copies.
	ArchiveImages(ctx context.Context, userID string, images []models.ImagePayload) ([]string, error)
}
