// File: services/schedule/shifts_test.go
package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateShiftShapeAllDay(t *testing.T) {
	assert.NoError(t, validateShiftShape(true, "2025-03-01", "", ""))
	assert.Error(t, validateShiftShape(true, "", "", ""))
	assert.Error(t, validateShiftShape(true, "March 1st", "", ""))
	assert.Error(t, validateShiftShape(true, "2025-03-01T17:00", "", ""))
}

func TestValidateShiftShapeTimed(t *testing.T) {
	assert.NoError(t, validateShiftShape(false, "", "2025-03-03T17:00", "2025-03-04T08:00"))
	assert.Error(t, validateShiftShape(false, "", "", "2025-03-04T08:00"))
	assert.Error(t, validateShiftShape(false, "", "2025-03-03T17:00", ""))
	// Hours must be zero-padded wall-clock.
	assert.Error(t, validateShiftShape(false, "", "2025-03-03 17:00", "2025-03-04 08:00"))
}

func TestValidateShiftShapeEndMustFollowStart(t *testing.T) {
	assert.Error(t, validateShiftShape(false, "", "2025-03-03T17:00", "2025-03-03T17:00"))
	assert.Error(t, validateShiftShape(false, "", "2025-03-04T08:00", "2025-03-03T17:00"))
}
