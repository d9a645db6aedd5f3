package postgres

import (
	"errors"

	"github.com/LevonKG/Smart-Expense-App/internal"
	"github.com/LevonKG/Smart-Expense-App/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM.
// Each call borrows a connection from the pool for its duration; GORM
// returns it on every exit path.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	return r.db.Create(exp).Error
}

// List returns records in insertion order. No snapshot isolation beyond
// the engine's default: concurrent writers may shift later pages.
func (r *ExpenseRepository) List(skip, limit int) ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var exp expense.Expense
	err := r.db.Where("id = ?", id).First(&exp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrExpenseNotFound
		}
		return nil, err
	}
	return &exp, nil
}
