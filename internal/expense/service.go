package expense

import (
	"log/slog"
	"time"

	"github.com/LevonKG/Smart-Expense-App/internal"
)

// Repository defines the data access methods for expenses. There is no
// update or delete: the table is append-only.
type Repository interface {
	Create(expense *Expense) error
	List(skip, limit int) ([]*Expense, error)
	GetByID(id int64) (*Expense, error)
}

// Service handles expense business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateExpense validates the draft, stamps the creation date and persists
// the record. The returned record is exactly what was committed, including
// the generated id.
func (s *Service) CreateExpense(dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	expense := &Expense{
		UserID:      dto.UserID,
		Amount:      *dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		ReceiptURL:  dto.ReceiptURL,
		Date:        time.Now().UTC(),
	}

	if err := s.repo.Create(expense); err != nil {
		s.logger.Error("failed to create expense", "error", err, "user_id", dto.UserID)
		return nil, internal.NewStorageError("failed to save expense", err)
	}

	s.logger.Info("expense created",
		"expense_id", expense.ID,
		"user_id", expense.UserID,
		"amount", expense.Amount,
		"category", expense.Category)

	return expense, nil
}

// ListExpenses returns up to limit records in insertion order, skipping the
// first skip. A skip past the end yields an empty slice, not an error.
func (s *Service) ListExpenses(skip, limit int) ([]*Expense, error) {
	expenses, err := s.repo.List(skip, limit)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "skip", skip, "limit", limit)
		return nil, internal.NewStorageError("failed to list expenses", err)
	}

	if expenses == nil {
		expenses = []*Expense{}
	}
	return expenses, nil
}

func (s *Service) GetExpenseByID(id int64) (*Expense, error) {
	expense, err := s.repo.GetByID(id)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, internal.NewStorageError("failed to get expense", err)
	}
	return expense, nil
}
