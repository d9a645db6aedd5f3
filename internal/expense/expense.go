package expense

import "time"

// Expense is a persisted expense record. Records are append-only: once
// created they are never updated or deleted, so id and date are immutable.
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"column:user_id;not null;index"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Description *string   `json:"description"`
	ReceiptURL  *string   `json:"receipt_url" gorm:"column:receipt_url"`
	Date        time.Time `json:"date" gorm:"column:date;not null"`
}

func (Expense) TableName() string {
	return "expenses"
}

// SuggestedCategories is advisory only. The model is prompted with it and
// clients may show it as a picker, but any string is accepted and stored.
var SuggestedCategories = []string{"Food", "Transport", "Leisure", "Home", "Groceries", "Other"}
