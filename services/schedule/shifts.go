// File: services/schedule/shifts.go
package schedule

import (
	"fmt"
	"time"

	"oncall/models"

	"github.com/google/uuid"
)

// validateShiftShape checks the wall-clock strings of one shift. The
// extraction pipeline passes these through unchecked; persistence is where
// calendar validity is enforced.
func validateShiftShape(allDay bool, date, startAt, endAt string) error {
	if allDay {
		if _, err := time.Parse(models.ShiftDateLayout, date); err != nil {
			return fmt.Errorf("invalid shift date %q", date)
		}
		return nil
	}
	start, err := time.Parse(models.ShiftDateTimeLayout, startAt)
	if err != nil {
		return fmt.Errorf("invalid shift start %q", startAt)
	}
	end, err := time.Parse(models.ShiftDateTimeLayout, endAt)
	if err != nil {
		return fmt.Errorf("invalid shift end %q", endAt)
	}
	if !end.After(start) {
		return fmt.Errorf("shift end %q is not after start %q", endAt, startAt)
	}
	return nil
}

// CreateShift inserts one shift into an owned schedule.
func (s *DefaultScheduleService) CreateShift(userID, scheduleID string, req models.ShiftRequest) (*models.Shift, error) {
	if _, err := s.getOwnedSchedule(userID, scheduleID); err != nil {
		return nil, err
	}
	if err := validateShiftShape(req.AllDay, req.Date, req.StartAt, req.EndAt); err != nil {
		return nil, err
	}

	shift := &models.Shift{
		ID:         uuid.New().String(),
		ScheduleID: scheduleID,
		UserID:     userID,
		AllDay:     req.AllDay,
		Date:       req.Date,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Note:       req.Note,
	}
	if err := s.ShiftRepo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	s.invalidateFeedCache(userID)
	return shift, nil
}

// GetShifts lists the shifts of an owned schedule in chronological order.
func (s *DefaultScheduleService) GetShifts(userID, scheduleID string) ([]models.Shift, error) {
	if _, err := s.getOwnedSchedule(userID, scheduleID); err != nil {
		return nil, err
	}
	shifts, err := s.ShiftRepo.GetByScheduleID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	return shifts, nil
}

// UpdateShift modifies one owned shift.
func (s *DefaultScheduleService) UpdateShift(userID, shiftID string, req models.ShiftRequest) (*models.Shift, error) {
	shift, err := s.ShiftRepo.GetByID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("shift not found: %w", err)
	}
	if shift.UserID != userID {
		return nil, fmt.Errorf("shift not found")
	}
	if err := validateShiftShape(req.AllDay, req.Date, req.StartAt, req.EndAt); err != nil {
		return nil, err
	}

	shift.AllDay = req.AllDay
	shift.Date = req.Date
	shift.StartAt = req.StartAt
	shift.EndAt = req.EndAt
	shift.Note = req.Note
	if err := s.ShiftRepo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	s.invalidateFeedCache(userID)
	return shift, nil
}

// DeleteShift removes one owned shift.
func (s *DefaultScheduleService) DeleteShift(userID, shiftID string) error {
	shift, err := s.ShiftRepo.GetByID(shiftID)
	if err != nil {
		return fmt.Errorf("shift not found: %w", err)
	}
	if shift.UserID != userID {
		return fmt.Errorf("shift not found")
	}
	if err := s.ShiftRepo.Delete(shiftID); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	s.invalidateFeedCache(userID)
	return nil
}

// ImportShifts persists reviewed extraction results into an owned schedule.
// Unlike the extraction pipeline's per-entry tolerance, an invalid entry here
// rejects the whole import: the user has already reviewed this list, so a bad
// record means something went wrong and silently dropping it would hide that.
func (s *DefaultScheduleService) ImportShifts(userID, scheduleID string, extracted []models.ExtractedShift) ([]models.Shift, error) {
	if _, err := s.getOwnedSchedule(userID, scheduleID); err != nil {
		return nil, err
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("no shifts to import")
	}

	shifts := make([]models.Shift, 0, len(extracted))
	for i, e := range extracted {
		allDay := e.Kind == models.ShiftKindAllDay
		if !allDay && e.Kind != models.ShiftKindTimed {
			return nil, fmt.Errorf("shift %d has unknown kind %q", i+1, e.Kind)
		}
		if err := validateShiftShape(allDay, e.Date, e.Start, e.End); err != nil {
			return nil, fmt.Errorf("shift %d: %w", i+1, err)
		}
		shifts = append(shifts, models.Shift{
			ID:         uuid.New().String(),
			ScheduleID: scheduleID,
			UserID:     userID,
			AllDay:     allDay,
			Date:       e.Date,
			StartAt:    e.Start,
			EndAt:      e.End,
			Note:       e.Note,
		})
	}

	if err := s.ShiftRepo.CreateMany(shifts); err != nil {
		return nil, fmt.Errorf("failed to import shifts: %w", err)
	}
	s.invalidateFeedCache(userID)
	return shifts, nil
}
