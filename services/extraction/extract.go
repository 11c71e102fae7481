// File: services/extraction/extract.go
package extraction

import (
	"context"

	"oncall/models"
	"oncall/utils"

	"go.uber.org/zap"
)

// User-facing messages for local pipeline failures. Model-reported errors are
// surfaced verbatim instead.
const (
	MsgGenerateFailed = "could not generate shifts"
	MsgParseFailed    = "failed to parse response"
)

// ExtractionService turns an upload into shift records.
type ExtractionService interface {
	// ExtractShifts returns the extracted shifts on success, or a non-empty
	// list of user-facing error strings on failure. Exactly one of the two
	// return values is meaningful: when errs is non-empty the shifts are
	// always nil. An empty shift list with no errors is a valid success;
	// the caller decides what "nothing found" means to the user.
	ExtractShifts(ctx context.Context, req models.ShiftExtractionRequest) (shifts []models.ExtractedShift, errs []string)
}

// DefaultExtractionService is the production implementation.
type DefaultExtractionService struct {
	Generator ShiftGenerator
}

// NewDefaultExtractionService wires the orchestrator to a generator.
func NewDefaultExtractionService(gen ShiftGenerator) *DefaultExtractionService {
	return &DefaultExtractionService{Generator: gen}
}

// ExtractShifts runs the pipeline once: generate, parse, normalize. No
// retries and no shared state between calls.
//
// Fail-closed: if the model reported any errors, every shift it emitted
// alongside them is discarded. The prompt instructs the model to use errors
// as a signal that the whole batch is untrustworthy.
func (s *DefaultExtractionService) ExtractShifts(ctx context.Context, req models.ShiftExtractionRequest) ([]models.ExtractedShift, []string) {
	logger := utils.GetLogger()

	raw, err := s.Generator.Generate(ctx, req)
	if err != nil {
		logger.Error("ExtractShifts: generation failed", zap.Error(err))
		return nil, []string{MsgGenerateFailed}
	}

	root, err := ParseResponse(raw)
	if err != nil {
		logger.Warn("ExtractShifts: unparseable model response", zap.Error(err))
		return nil, []string{MsgParseFailed}
	}

	outcome := NormalizeOutcome(root)
	if len(outcome.Errors) > 0 {
		logger.Info("ExtractShifts: model reported errors",
			zap.Strings("errors", outcome.Errors),
			zap.Int("discardedShifts", len(outcome.Shifts)))
		return nil, outcome.Errors
	}

	return outcome.Shifts, nil
}
