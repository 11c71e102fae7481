// File: services/extraction/extract_test.go
package extraction

import (
	"context"
	"errors"
	"testing"

	"oncall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns a canned reply or a canned failure.
type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, req models.ShiftExtractionRequest) (string, error) {
	return s.reply, s.err
}

func extractWith(t *testing.T, gen ShiftGenerator) ([]models.ExtractedShift, []string) {
	t.Helper()
	svc := NewDefaultExtractionService(gen)
	return svc.ExtractShifts(context.Background(), models.ShiftExtractionRequest{
		ResidentName: "Park",
		Images:       []models.ImagePayload{{Data: []byte{0x89}, MediaType: "image/png"}},
	})
}

func TestExtractShiftsSuccess(t *testing.T) {
	gen := &stubGenerator{reply: `<response>
<summary>Two call days for Park.</summary>
<errors></errors>
<schedule>
<shift><type>allday</type><date>2025-03-01</date></shift>
<shift><type>allday</type><date>2025-03-15</date></shift>
</schedule>
</response>`}

	shifts, errs := extractWith(t, gen)
	require.Empty(t, errs)
	require.Len(t, shifts, 2)
	assert.Equal(t, "2025-03-01", shifts[0].Date)
	assert.Equal(t, "2025-03-15", shifts[1].Date)
}

func TestExtractShiftsModelErrorsSurfaceVerbatim(t *testing.T) {
	gen := &stubGenerator{reply: `<thinking>I cannot find this resident.</thinking>
<errors><error>Resident name not found in the schedule image.</error></errors>
<schedule></schedule>`}

	shifts, errs := extractWith(t, gen)
	assert.Nil(t, shifts)
	assert.Equal(t, []string{"Resident name not found in the schedule image."}, errs)
}

func TestExtractShiftsFailClosedOnMixedReply(t *testing.T) {
	// Shifts emitted alongside errors are untrustworthy and must be dropped.
	gen := &stubGenerator{reply: `<response>
<errors><error>The image could not be read as a call schedule.</error></errors>
<schedule><shift><type>allday</type><date>2025-03-01</date></shift></schedule>
</response>`}

	shifts, errs := extractWith(t, gen)
	assert.Nil(t, shifts)
	assert.Equal(t, []string{"The image could not be read as a call schedule."}, errs)
}

func TestExtractShiftsGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("rpc error: unavailable")}

	shifts, errs := extractWith(t, gen)
	assert.Nil(t, shifts)
	assert.Equal(t, []string{MsgGenerateFailed}, errs)
}

func TestExtractShiftsUnparseableReply(t *testing.T) {
	gen := &stubGenerator{reply: "I'm sorry, as a language model I cannot help with that."}

	shifts, errs := extractWith(t, gen)
	assert.Nil(t, shifts)
	assert.Equal(t, []string{MsgParseFailed}, errs)
}

func TestExtractShiftsEmptyScheduleIsNotAnError(t *testing.T) {
	gen := &stubGenerator{reply: `<response><summary>No shifts for this resident this block.</summary><errors></errors><schedule></schedule></response>`}

	shifts, errs := extractWith(t, gen)
	assert.Empty(t, errs)
	assert.Empty(t, shifts)
}
