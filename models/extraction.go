// models/extraction.go
package models

// AllowedImageTypes is the media-type allow-list for schedule uploads.
var AllowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// ImagePayload is one uploaded schedule image.
type ImagePayload struct {
	Data      []byte
	MediaType string
}

// ShiftExtractionRequest carries everything the extraction pipeline needs for
// one upload. It is never persisted. Image order matters: later pages may
// depend on headers established in earlier ones.
type ShiftExtractionRequest struct {
	ResidentName string
	ExtraContext string
	Images       []ImagePayload
}

// ShiftKind discriminates the two extracted shift shapes.
type ShiftKind string

const (
	ShiftKindAllDay ShiftKind = "allday"
	ShiftKindTimed  ShiftKind = "timed"
)

// ExtractedShift is one shift pulled out of a schedule image. Exactly one of
// the two shapes applies: all-day (Date) or timed (Start/End). Times are
// local wall-clock with no offset.
type ExtractedShift struct {
	Kind  ShiftKind `json:"kind"`
	Date  string    `json:"date,omitempty"`
	Start string    `json:"start,omitempty"`
	End   string    `json:"end,omitempty"`
	Note  string    `json:"note,omitempty"`
}
