// File: services/extraction/normalize.go
package extraction

import (
	"strings"

	"oncall/models"
)

// Outcome is the normalized result of one model reply. If Errors is
// non-empty, Shifts must not be used (fail-closed; the orchestrator enforces
// this).
type Outcome struct {
	Shifts []models.ExtractedShift
	Errors []string
}

// NormalizeOutcome walks the parsed tree and produces error messages and
// shift records in document order. Entries that do not conform are dropped
// individually; one bad block never discards its siblings. No cross-field
// validation happens here: date strings go to the caller as written.
func NormalizeOutcome(root *Node) Outcome {
	var out Outcome

	if errs := root.First("errors"); errs != nil {
		for _, e := range errs.All("error") {
			if !e.IsText() {
				continue
			}
			if msg := strings.TrimSpace(e.Text); msg != "" {
				out.Errors = append(out.Errors, msg)
			}
		}
	}

	if sched := root.First("schedule"); sched != nil {
		for _, s := range sched.All("shift") {
			if shift, ok := normalizeShift(s); ok {
				out.Shifts = append(out.Shifts, shift)
			}
		}
	}

	return out
}

// normalizeShift interprets one shift block. The discriminator is the
// explicit <type> tag, not field presence: an allday block must carry a date,
// a timed block must carry both start and end. Anything else is dropped.
func normalizeShift(n *Node) (models.ExtractedShift, bool) {
	note := childText(n, "note")

	switch childText(n, "type") {
	case string(models.ShiftKindAllDay):
		date := childText(n, "date")
		if date == "" {
			return models.ExtractedShift{}, false
		}
		return models.ExtractedShift{
			Kind: models.ShiftKindAllDay,
			Date: date,
			Note: note,
		}, true
	case string(models.ShiftKindTimed):
		start := childText(n, "start")
		end := childText(n, "end")
		if start == "" || end == "" {
			return models.ExtractedShift{}, false
		}
		return models.ExtractedShift{
			Kind:  models.ShiftKindTimed,
			Start: start,
			End:   end,
			Note:  note,
		}, true
	}
	return models.ExtractedShift{}, false
}

// childText returns the trimmed text of the first child with the given tag,
// or "" when the child is absent or is not a plain text leaf.
func childText(n *Node, tag string) string {
	c := n.First(tag)
	if c == nil || !c.IsText() {
		return ""
	}
	return strings.TrimSpace(c.Text)
}
