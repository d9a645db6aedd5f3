package extraction_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LevonKG/Smart-Expense-App/internal/extraction"
	"github.com/LevonKG/Smart-Expense-App/internal/transport"
)

// stubAnalyzer returns a canned result and records the text it received.
type stubAnalyzer struct {
	result   extraction.Result
	lastText string
	calls    int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, text string) extraction.Result {
	s.calls++
	s.lastText = text
	return s.result
}

var _ = Describe("Extraction Handler", func() {
	var (
		analyzer *stubAnalyzer
		handler  *extraction.Handler
	)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.AnalyzeExpense(w, req)
		return w
	}

	BeforeEach(func() {
		analyzer = &stubAnalyzer{
			result: extraction.Result{Amount: 12.5, Category: "Food", Description: "McDonald's"},
		}
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = extraction.NewHandler(transport.NewBaseHandler(slogger), analyzer)
	})

	It("should return 200 with the analysis result", func() {
		w := post(`{"text": "Spent 12.50 at McDonald's"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var result extraction.Result
		Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
		Expect(result).To(Equal(analyzer.result))
		Expect(analyzer.lastText).To(Equal("Spent 12.50 at McDonald's"))
	})

	It("should return a sentinel result with status 200, not an error status", func() {
		analyzer.result = extraction.Fallback(extraction.ReasonMissingCredential)

		w := post(`{"text": "coffee"}`)

		Expect(w.Code).To(Equal(http.StatusOK))

		var result extraction.Result
		Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
		Expect(result.Category).To(Equal("Error"))
		Expect(result.Description).To(Equal("Missing credential"))
	})

	It("should reject empty text without calling the service", func() {
		w := post(`{"text": ""}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(analyzer.calls).To(BeZero())

		var errResp transport.ErrorResponse
		Expect(json.NewDecoder(w.Body).Decode(&errResp)).To(Succeed())
		Expect(errResp.Detail).To(Equal("text must not be empty"))
	})

	It("should treat whitespace-only text as empty", func() {
		w := post(`{"text": "   \n\t "}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(analyzer.calls).To(BeZero())
	})

	It("should reject a body with no text field", func() {
		w := post(`{}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should reject malformed JSON", func() {
		w := post(`{not json`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var errResp transport.ErrorResponse
		Expect(json.NewDecoder(w.Body).Decode(&errResp)).To(Succeed())
		Expect(errResp.Detail).To(Equal("invalid request body"))
	})
})
