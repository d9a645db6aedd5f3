package extraction

import (
	"context"
	"errors"
	"log/slog"
)

// Service wraps a ModelClient behind an always-succeeds contract: Analyze
// returns a value for every input, converting any failure into the
// sentinel Result. No error crosses this boundary and nothing is
// persisted here.
type Service struct {
	client ModelClient
	logger *slog.Logger
}

func NewService(client ModelClient, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Analyze extracts the {amount, category, description} triple from text.
// A conforming model response is passed through unmodified: no clamping,
// no category enforcement.
func (s *Service) Analyze(ctx context.Context, text string) Result {
	fields, raw, err := s.client.ExtractFields(ctx, text)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			s.logger.Warn("extraction skipped: no model credential configured")
			return Fallback(ReasonMissingCredential)
		}
		s.logger.Error("extraction failed", "error", err, "text_len", len(text))
		return Fallback(ReasonProcessingFailure)
	}

	if err := ValidateAgainstSchema(BuildResultJSONSchema(), raw); err != nil {
		s.logger.Error("extraction returned non-conforming payload", "error", err, "raw_len", len(raw))
		return Fallback(ReasonProcessingFailure)
	}

	s.logger.Info("extraction succeeded",
		"amount", fields.Amount,
		"category", fields.Category,
		"text_len", len(text))

	return fields
}
