package scheduleRepo

import "oncall/models"

// ScheduleRepository defines methods for schedule data access.
type ScheduleRepository interface {
	// GetByID retrieves a schedule by its unique ID.
	GetByID(id string) (*models.Schedule, error)
	// GetByUserID retrieves all schedules owned by a user.
	GetByUserID(userID string) ([]models.Schedule, error)
	// GetFinalizedByUserID retrieves only finalized schedules for a user.
	GetFinalizedByUserID(userID string) ([]models.Schedule, error)
	// Create inserts a new schedule record.
	Create(schedule *models.Schedule) error
	// Update modifies an existing schedule record.
	Update(schedule *models.Schedule) error
	// Delete removes a schedule record by its ID.
	Delete(id string) error
}
