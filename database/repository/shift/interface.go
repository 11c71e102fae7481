package shiftRepo

import "oncall/models"

// ShiftRepository defines methods for shift data access.
type ShiftRepository interface {
	// GetByID retrieves a shift by its unique ID.
	GetByID(id string) (*models.Shift, error)
	// GetByScheduleID retrieves all shifts in a schedule.
	GetByScheduleID(scheduleID string) ([]models.Shift, error)
	// GetByScheduleIDs retrieves all shifts across the given schedules.
	GetByScheduleIDs(scheduleIDs []string) ([]models.Shift, error)
	// Create inserts a new shift record.
	Create(shift *models.Shift) error
	// CreateMany inserts a batch of shift records.
	CreateMany(shifts []models.Shift) error
	// Update modifies an existing shift record.
	Update(shift *models.Shift) error
	// Delete removes a shift record by its ID.
	Delete(id string) error
	// DeleteByScheduleID removes every shift in a schedule.
	DeleteByScheduleID(scheduleID string) error
}
