package schedule

import (
	locationRepo "oncall/database/repository/location"
	scheduleRepo "oncall/database/repository/schedule"
	shiftRepo "oncall/database/repository/shift"
	subkeyRepo "oncall/database/repository/subkey"
	userRepo "oncall/database/repository/user"
	"oncall/models"
)

type ScheduleService interface {
	// Locations
	CreateLocation(userID string, req models.LocationRequest) (*models.Location, error)
	GetLocations(userID string) ([]models.Location, error)
	UpdateLocation(userID, locationID string, req models.LocationRequest) (*models.Location, error)
	DeleteLocation(userID, locationID string) error

	// Schedules
	CreateSchedule(userID string, req models.ScheduleRequest) (*models.Schedule, error)
	GetSchedules(userID string) ([]models.Schedule, error)
	GetSchedule(userID, scheduleID string) (*models.Schedule, error)
	UpdateSchedule(userID, scheduleID string, req models.ScheduleRequest) (*models.Schedule, error)
	FinalizeSchedule(userID, scheduleID string) (*models.Schedule, error)
	DeleteSchedule(userID, scheduleID string) error

	// Shifts
	CreateShift(userID, scheduleID string, req models.ShiftRequest) (*models.Shift, error)
	GetShifts(userID, scheduleID string) ([]models.Shift, error)
	UpdateShift(userID, shiftID string, req models.ShiftRequest) (*models.Shift, error)
	DeleteShift(userID, shiftID string) error
	// ImportShifts persists reviewed extraction results into a schedule.
	ImportShifts(userID, scheduleID string, extracted []models.ExtractedShift) ([]models.Shift, error)

	// Subscription keys and the public calendar feed
	IssueSubscriptionKey(userID string) (*models.SubscriptionKey, error)
	GetSubscriptionKeys(userID string) ([]models.SubscriptionKey, error)
	RevokeSubscriptionKey(userID, keyID string) error
	BuildCalendarFeed(key string) (string, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	ShiftRepo    shiftRepo.ShiftRepository
	LocationRepo locationRepo.LocationRepository
	SubKeyRepo   subkeyRepo.SubscriptionKeyRepository
	UserRepo     userRepo.UserRepository
}
