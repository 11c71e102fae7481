package schedule

import (
	"fmt"

	"oncall/models"

	"github.com/google/uuid"
)

// CreateLocation inserts a new location for the user.
func (s *DefaultScheduleService) CreateLocation(userID string, req models.LocationRequest) (*models.Location, error) {
	loc := &models.Location{
		ID:      uuid.New().String(),
		UserID:  userID,
		Name:    req.Name,
		Address: req.Address,
	}
	if err := s.LocationRepo.Create(loc); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return loc, nil
}

// GetLocations lists the user's locations.
func (s *DefaultScheduleService) GetLocations(userID string) ([]models.Location, error) {
	locations, err := s.LocationRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	return locations, nil
}

// getOwnedLocation fetches a location and verifies ownership.
func (s *DefaultScheduleService) getOwnedLocation(userID, locationID string) (*models.Location, error) {
	loc, err := s.LocationRepo.GetByID(locationID)
	if err != nil {
		return nil, fmt.Errorf("location not found: %w", err)
	}
	if loc.UserID != userID {
		return nil, fmt.Errorf("location not found")
	}
	return loc, nil
}

// UpdateLocation modifies an owned location.
func (s *DefaultScheduleService) UpdateLocation(userID, locationID string, req models.LocationRequest) (*models.Location, error) {
	loc, err := s.getOwnedLocation(userID, locationID)
	if err != nil {
		return nil, err
	}
	loc.Name = req.Name
	loc.Address = req.Address
	if err := s.LocationRepo.Update(loc); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return loc, nil
}

// DeleteLocation removes an owned location. Schedules referencing it keep the
// dangling ID; the feed and listings tolerate a missing location.
func (s *DefaultScheduleService) DeleteLocation(userID, locationID string) error {
	if _, err := s.getOwnedLocation(userID, locationID); err != nil {
		return err
	}
	return s.LocationRepo.Delete(locationID)
}
