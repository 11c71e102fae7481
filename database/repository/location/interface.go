package locationRepo

import "oncall/models"

// LocationRepository defines methods for location data access.
type LocationRepository interface {
	// GetByID retrieves a location by its unique ID.
	GetByID(id string) (*models.Location, error)
	// GetByUserID retrieves all locations owned by a user.
	GetByUserID(userID string) ([]models.Location, error)
	// Create inserts a new location record.
	Create(location *models.Location) error
	// Update modifies an existing location record.
	Update(location *models.Location) error
	// Delete removes a location record by its ID.
	Delete(id string) error
}
