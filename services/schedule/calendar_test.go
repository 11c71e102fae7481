// File: services/schedule/calendar_test.go
package schedule

import (
	"testing"
	"time"

	"oncall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedUser(tz string) *models.User {
	return &models.User{ID: "user-1", Name: "J. Park", Timezone: tz}
}

func TestRenderCalendarAllDayShift(t *testing.T) {
	shifts := []models.Shift{{
		ID:         "shift-1",
		ScheduleID: "sched-1",
		UserID:     "user-1",
		AllDay:     true,
		Date:       "2025-03-01",
		UpdatedAt:  time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC),
	}}

	feed, err := renderCalendar(feedUser("America/New_York"), shifts, nil)
	require.NoError(t, err)

	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "UID:shift-1")
	assert.Contains(t, feed, "SUMMARY:On call")
	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20250301")
	// All-day events end on the following date, exclusive.
	assert.Contains(t, feed, "DTEND;VALUE=DATE:20250302")
}

func TestRenderCalendarTimedShiftUsesUserTimezone(t *testing.T) {
	shifts := []models.Shift{{
		ID:         "shift-2",
		ScheduleID: "sched-1",
		UserID:     "user-1",
		StartAt:    "2025-03-03T17:00",
		EndAt:      "2025-03-04T08:00",
		Note:       "NICU",
	}}

	feed, err := renderCalendar(feedUser("America/New_York"), shifts, map[string]string{"sched-1": "General Hospital"})
	require.NoError(t, err)

	// 17:00 Eastern on 2025-03-03 is 22:00 UTC (EST, -05:00).
	assert.Contains(t, feed, "DTSTART:20250303T220000Z")
	assert.Contains(t, feed, "DTEND:20250304T130000Z")
	assert.Contains(t, feed, "SUMMARY:On call: NICU")
	assert.Contains(t, feed, "LOCATION:General Hospital")
}

func TestRenderCalendarFallsBackToUTC(t *testing.T) {
	shifts := []models.Shift{{
		ID:      "shift-3",
		StartAt: "2025-03-03T17:00",
		EndAt:   "2025-03-03T19:00",
	}}

	feed, err := renderCalendar(feedUser("Not/AZone"), shifts, nil)
	require.NoError(t, err)
	assert.Contains(t, feed, "DTSTART:20250303T170000Z")
}

func TestRenderCalendarSkipsUnparseableShifts(t *testing.T) {
	shifts := []models.Shift{
		{ID: "bad-1", AllDay: true, Date: "March 1st"},
		{ID: "good-1", AllDay: true, Date: "2025-03-01"},
	}

	feed, err := renderCalendar(feedUser("UTC"), shifts, nil)
	require.NoError(t, err)
	assert.NotContains(t, feed, "UID:bad-1")
	assert.Contains(t, feed, "UID:good-1")
}
