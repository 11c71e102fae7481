// File: services/schedule/schedules.go
package schedule

import (
	"fmt"

	"oncall/models"

	"github.com/google/uuid"
)

// CreateSchedule inserts a new draft schedule for the user.
func (s *DefaultScheduleService) CreateSchedule(userID string, req models.ScheduleRequest) (*models.Schedule, error) {
	if req.LocationID != "" {
		if _, err := s.getOwnedLocation(userID, req.LocationID); err != nil {
			return nil, err
		}
	}
	sched := &models.Schedule{
		ID:         uuid.New().String(),
		UserID:     userID,
		LocationID: req.LocationID,
		Name:       req.Name,
		Status:     models.ScheduleStatusDraft,
	}
	if err := s.ScheduleRepo.Create(sched); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return sched, nil
}

// GetSchedules lists the user's schedules.
func (s *DefaultScheduleService) GetSchedules(userID string) ([]models.Schedule, error) {
	schedules, err := s.ScheduleRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	return schedules, nil
}

// getOwnedSchedule fetches a schedule and verifies ownership.
func (s *DefaultScheduleService) getOwnedSchedule(userID, scheduleID string) (*models.Schedule, error) {
	sched, err := s.ScheduleRepo.GetByID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("schedule not found: %w", err)
	}
	if sched.UserID != userID {
		return nil, fmt.Errorf("schedule not found")
	}
	return sched, nil
}

// GetSchedule retrieves one owned schedule.
func (s *DefaultScheduleService) GetSchedule(userID, scheduleID string) (*models.Schedule, error) {
	return s.getOwnedSchedule(userID, scheduleID)
}

// UpdateSchedule modifies an owned schedule's name or location.
func (s *DefaultScheduleService) UpdateSchedule(userID, scheduleID string, req models.ScheduleRequest) (*models.Schedule, error) {
	sched, err := s.getOwnedSchedule(userID, scheduleID)
	if err != nil {
		return nil, err
	}
	if req.LocationID != "" {
		if _, err := s.getOwnedLocation(userID, req.LocationID); err != nil {
			return nil, err
		}
	}
	sched.Name = req.Name
	sched.LocationID = req.LocationID
	if err := s.ScheduleRepo.Update(sched); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return sched, nil
}

// FinalizeSchedule moves a draft schedule into the finalized state, making
// its shifts visible in the calendar feed.
func (s *DefaultScheduleService) FinalizeSchedule(userID, scheduleID string) (*models.Schedule, error) {
	sched, err := s.getOwnedSchedule(userID, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched.Status == models.ScheduleStatusFinalized {
		return sched, nil
	}
	sched.Status = models.ScheduleStatusFinalized
	if err := s.ScheduleRepo.Update(sched); err != nil {
		return nil, fmt.Errorf("failed to finalize schedule: %w", err)
	}
	s.invalidateFeedCache(userID)
	return sched, nil
}

// DeleteSchedule removes an owned schedule and all its shifts.
func (s *DefaultScheduleService) DeleteSchedule(userID, scheduleID string) error {
	if _, err := s.getOwnedSchedule(userID, scheduleID); err != nil {
		return err
	}
	if err := s.ShiftRepo.DeleteByScheduleID(scheduleID); err != nil {
		return fmt.Errorf("failed to delete schedule shifts: %w", err)
	}
	if err := s.ScheduleRepo.Delete(scheduleID); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	s.invalidateFeedCache(userID)
	return nil
}
