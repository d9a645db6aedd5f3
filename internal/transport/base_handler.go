package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/LevonKG/Smart-Expense-App/internal"
	"github.com/LevonKG/Smart-Expense-App/pkg/logger"
)

// BaseHandler provides the shared response plumbing for HTTP handlers.
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &BaseHandler{Logger: lg}
}

// ErrorResponse is the wire shape of every error this API produces.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, detail string) {
	h.Logger.Error("http error", "status", status, "detail", detail)
	h.WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// HandleServiceError maps service-layer errors onto status codes. Unknown
// errors become opaque 500s so internals never leak to clients.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteError(w, appErr.StatusCode, appErr.Detail)
		return
	}
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
