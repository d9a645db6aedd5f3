package expense_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/LevonKG/Smart-Expense-App/internal/expense"
	expensePostgres "github.com/LevonKG/Smart-Expense-App/internal/expense/postgres"
	"github.com/LevonKG/Smart-Expense-App/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("Expense Handler Integration", func() {
	var (
		db      *gorm.DB
		service *expense.Service
		handler *expense.Handler
		router  *chi.Mux
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&expense.Expense{})
		Expect(err).NotTo(HaveOccurred())

		repo := expensePostgres.NewExpenseRepository(db)
		service = expense.NewService(repo, slogger)
		handler = expense.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		router.Route("/expenses", func(r chi.Router) {
			r.Post("/", handler.CreateExpense)
			r.Get("/", handler.ListExpenses)
			r.Get("/{id}", handler.GetExpense)
		})
	})

	Describe("POST /expenses", func() {
		It("should create an expense and return 201 with generated id and date", func() {
			body := `{"amount": 12.5, "category": "Food", "user_id": "u1"}`
			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var created expense.Expense
			err := json.NewDecoder(w.Body).Decode(&created)
			Expect(err).NotTo(HaveOccurred())

			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.UserID).To(Equal("u1"))
			Expect(created.Amount).To(Equal(12.5))
			Expect(created.Category).To(Equal("Food"))
			Expect(created.Description).To(BeNil())
			Expect(created.ReceiptURL).To(BeNil())
			Expect(created.Date.IsZero()).To(BeFalse())
		})

		It("should serialize omitted optional fields as null", func() {
			body := `{"amount": 3, "category": "Other", "user_id": "u1"}`
			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var raw map[string]json.RawMessage
			err := json.NewDecoder(w.Body).Decode(&raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw["description"])).To(Equal("null"))
			Expect(string(raw["receipt_url"])).To(Equal("null"))
		})

		It("should return 400 with a detail message when user_id is missing", func() {
			body := `{"amount": 12.5, "category": "Food"}`
			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var errResp transport.ErrorResponse
			err := json.NewDecoder(w.Body).Decode(&errResp)
			Expect(err).NotTo(HaveOccurred())
			Expect(errResp.Detail).To(ContainSubstring("user_id"))
		})

		It("should return 400 when amount is absent", func() {
			body := `{"category": "Food", "user_id": "u1"}`
			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 on malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{not json`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /expenses", func() {
		BeforeEach(func() {
			for _, body := range []string{
				`{"amount": 1, "category": "Food", "user_id": "u1"}`,
				`{"amount": 2, "category": "Transport", "user_id": "u1"}`,
				`{"amount": 3, "category": "Home", "user_id": "u2"}`,
			} {
				req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				Expect(w.Code).To(Equal(http.StatusCreated))
			}
		})

		It("should list all records by default", func() {
			req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var listed []expense.Expense
			err := json.NewDecoder(w.Body).Decode(&listed)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(3))
		})

		It("should honor skip and limit", func() {
			req := httptest.NewRequest(http.MethodGet, "/expenses?skip=1&limit=1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var listed []expense.Expense
			err := json.NewDecoder(w.Body).Decode(&listed)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(1))
			Expect(listed[0].Amount).To(Equal(2.0))
		})

		It("should return an empty JSON array when skip is past the end", func() {
			req := httptest.NewRequest(http.MethodGet, "/expenses?skip=50", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
		})

		It("should fall back to defaults on junk query values", func() {
			req := httptest.NewRequest(http.MethodGet, "/expenses?skip=abc&limit=-4", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var listed []expense.Expense
			err := json.NewDecoder(w.Body).Decode(&listed)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(3))
		})
	})

	Describe("GET /expenses/{id}", func() {
		It("should return the record when it exists", func() {
			created, err := service.CreateExpense(expense.CreateExpenseDTO{
				Amount:   floatPtr(42),
				Category: "Leisure",
				UserID:   "u1",
			})
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/expenses/1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var got expense.Expense
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.ID).To(Equal(created.ID))
			Expect(got.Amount).To(Equal(42.0))
		})

		It("should return 404 for an unknown id", func() {
			req := httptest.NewRequest(http.MethodGet, "/expenses/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			req := httptest.NewRequest(http.MethodGet, "/expenses/abc", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
