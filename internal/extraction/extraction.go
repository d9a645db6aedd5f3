package extraction

import (
	"context"
	"errors"
)

// Result is the structured triple extracted from one free-text expense
// description. It is transient: turning it into a stored expense is a
// separate, explicit create call by the client.
type Result struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// A Result with Category == SentinelCategory signals failure without an
// error ever crossing the extraction boundary. Description then carries
// the reason.
const (
	SentinelCategory        = "Error"
	ReasonMissingCredential = "Missing credential"
	ReasonProcessingFailure = "Processing failure"
)

func Fallback(reason string) Result {
	return Result{Amount: 0.0, Category: SentinelCategory, Description: reason}
}

func (r Result) IsError() bool {
	return r.Category == SentinelCategory
}

// ErrMissingCredential is returned by a ModelClient when no API key is
// configured. The Service maps it to the ReasonMissingCredential fallback.
var ErrMissingCredential = errors.New("extraction: model credential is not configured")

// ModelClient is the boundary to the external text-generation service.
// Implementations return the parsed fields together with the raw model
// payload so the caller can re-validate it.
type ModelClient interface {
	ExtractFields(ctx context.Context, text string) (Result, []byte, error)
}
