package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/LevonKG/Smart-Expense-App/internal/transport"
)

// AnalyzeRequest is the request payload for free-text analysis.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

type ServiceAPI interface {
	Analyze(ctx context.Context, text string) Result
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// AnalyzeExpense rejects empty text before the model is ever called, then
// returns whatever the extraction contract yields. The result is not
// persisted; creating an expense from it is the client's separate call.
func (h *Handler) AnalyzeExpense(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("AnalyzeExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		h.WriteError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	result := h.Service.Analyze(r.Context(), req.Text)
	h.WriteJSON(w, http.StatusOK, result)
}
