// File: services/schedule/calendar.go
package schedule

import (
	"context"
	"fmt"
	"time"

	"oncall/models"
	"oncall/utils"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

const feedProductID = "-//oncall//calendar feed//EN"

// BuildCalendarFeed renders the iCalendar document for a subscription key:
// every shift in the user's finalized schedules, interpreted against the
// user's timezone. Rendered feeds are cached briefly since calendar clients
// poll aggressively.
func (s *DefaultScheduleService) BuildCalendarFeed(key string) (string, error) {
	userID, err := s.resolveFeedKey(key)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	cache := utils.GetCacheClient()
	if feed, err := cache.Get(ctx, utils.FeedCachePrefix+userID).Result(); err == nil && feed != "" {
		return feed, nil
	}

	usr, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed owner: %w", err)
	}

	schedules, err := s.ScheduleRepo.GetFinalizedByUserID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch schedules: %w", err)
	}
	scheduleIDs := make([]string, 0, len(schedules))
	locationBySchedule := make(map[string]string, len(schedules))
	for _, sched := range schedules {
		scheduleIDs = append(scheduleIDs, sched.ID)
		if sched.LocationID == "" {
			continue
		}
		if loc, err := s.LocationRepo.GetByID(sched.LocationID); err == nil {
			locationBySchedule[sched.ID] = loc.Name
		}
	}

	shifts, err := s.ShiftRepo.GetByScheduleIDs(scheduleIDs)
	if err != nil {
		return "", fmt.Errorf("failed to fetch shifts: %w", err)
	}

	feed, err := renderCalendar(usr, shifts, locationBySchedule)
	if err != nil {
		return "", err
	}

	if err := cache.Set(ctx, utils.FeedCachePrefix+userID, feed, utils.FeedCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("BuildCalendarFeed: failed to cache feed", zap.Error(err))
	}
	return feed, nil
}

// renderCalendar serializes shifts into a VCALENDAR document. Wall-clock
// start/end strings are interpreted in the user's timezone here and nowhere
// else.
func renderCalendar(usr *models.User, shifts []models.Shift, locationBySchedule map[string]string) (string, error) {
	loc, err := time.LoadLocation(usr.Timezone)
	if err != nil {
		loc = time.UTC
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(feedProductID)

	for _, shift := range shifts {
		var day, start, end time.Time
		var parseErr error
		if shift.AllDay {
			day, parseErr = time.ParseInLocation(models.ShiftDateLayout, shift.Date, loc)
		} else {
			start, parseErr = time.ParseInLocation(models.ShiftDateTimeLayout, shift.StartAt, loc)
			if parseErr == nil {
				end, parseErr = time.ParseInLocation(models.ShiftDateTimeLayout, shift.EndAt, loc)
			}
		}
		if parseErr != nil {
			utils.GetLogger().Warn("renderCalendar: skipping shift with unparseable times",
				zap.String("shiftId", shift.ID), zap.Error(parseErr))
			continue
		}

		event := cal.AddEvent(shift.ID)
		event.SetDtStampTime(shift.UpdatedAt)

		summary := "On call"
		if shift.Note != "" {
			summary = "On call: " + shift.Note
		}
		event.SetSummary(summary)
		if name, ok := locationBySchedule[shift.ScheduleID]; ok {
			event.SetLocation(name)
		}

		if shift.AllDay {
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		} else {
			event.SetStartAt(start)
			event.SetEndAt(end)
		}
	}

	return cal.Serialize(), nil
}

// invalidateFeedCache drops the cached feed after any shift or schedule
// mutation.
func (s *DefaultScheduleService) invalidateFeedCache(userID string) {
	ctx := context.Background()
	if err := utils.GetCacheClient().Del(ctx, utils.FeedCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("invalidateFeedCache: failed to drop cached feed", zap.Error(err))
	}
}
