// File: services/extraction/normalize_test.go
package extraction

import (
	"testing"

	"oncall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *Node {
	t.Helper()
	root, err := ParseResponse(raw)
	require.NoError(t, err)
	return root
}

func TestNormalizeOutcomeShiftsInDocumentOrder(t *testing.T) {
	root := mustParse(t, `<response><schedule>
<shift><type>allday</type><date>2025-03-01</date></shift>
<shift><type>timed</type><start>2025-03-03T17:00</start><end>2025-03-04T08:00</end><note>NICU</note></shift>
<shift><type>allday</type><date>2025-03-08</date></shift>
</schedule></response>`)

	out := NormalizeOutcome(root)
	require.Empty(t, out.Errors)
	require.Len(t, out.Shifts, 3)

	assert.Equal(t, models.ShiftKindAllDay, out.Shifts[0].Kind)
	assert.Equal(t, "2025-03-01", out.Shifts[0].Date)

	assert.Equal(t, models.ShiftKindTimed, out.Shifts[1].Kind)
	assert.Equal(t, "2025-03-03T17:00", out.Shifts[1].Start)
	assert.Equal(t, "2025-03-04T08:00", out.Shifts[1].End)
	assert.Equal(t, "NICU", out.Shifts[1].Note)

	assert.Equal(t, "2025-03-08", out.Shifts[2].Date)
}

func TestNormalizeOutcomeTypeTagIsTheDiscriminator(t *testing.T) {
	// A block claiming to be timed does not become allday just because it
	// carries a date; it is malformed and gets dropped.
	root := mustParse(t, `<response><schedule>
<shift><type>timed</type><date>2025-03-01</date></shift>
<shift><type>allday</type><start>2025-03-03T17:00</start><end>2025-03-04T08:00</end></shift>
</schedule></response>`)

	out := NormalizeOutcome(root)
	assert.Empty(t, out.Shifts)
	assert.Empty(t, out.Errors)
}

func TestNormalizeOutcomeBadEntryDoesNotDiscardSiblings(t *testing.T) {
	root := mustParse(t, `<response><schedule>
<shift><type>allday</type><date>2025-03-01</date></shift>
<shift><type>submarine</type><date>2025-03-02</date></shift>
<shift><type>allday</type></shift>
<shift><type>allday</type><date>2025-03-09</date></shift>
</schedule></response>`)

	out := NormalizeOutcome(root)
	require.Len(t, out.Shifts, 2)
	assert.Equal(t, "2025-03-01", out.Shifts[0].Date)
	assert.Equal(t, "2025-03-09", out.Shifts[1].Date)
}

func TestNormalizeOutcomeCollectsErrorMessages(t *testing.T) {
	root := mustParse(t, `<response><errors>
<error>Resident name not found in the schedule image.</error>
<error>  </error>
<error><nested>not a leaf</nested></error>
</errors></response>`)

	out := NormalizeOutcome(root)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Resident name not found in the schedule image.", out.Errors[0])
}

func TestNormalizeOutcomeEmptyScheduleIsSuccess(t *testing.T) {
	root := mustParse(t, `<response><summary>nothing for this resident</summary><errors></errors><schedule></schedule></response>`)

	out := NormalizeOutcome(root)
	assert.Empty(t, out.Shifts)
	assert.Empty(t, out.Errors)
}
