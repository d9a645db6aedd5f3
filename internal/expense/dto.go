package expense

import (
	"errors"
	"fmt"

	"github.com/LevonKG/Smart-Expense-App/internal"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateExpenseDTO is the request payload for creating an expense. Amount
// is a pointer so presence, not zero-ness, is what "required" checks: an
// explicit 0 is accepted, a missing field is not. Sign, category membership
// and URL shape are deliberately not validated here.
type CreateExpenseDTO struct {
	Amount      *float64 `json:"amount" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description *string  `json:"description"`
	ReceiptURL  *string  `json:"receipt_url"`
	UserID      string   `json:"user_id" validate:"required"`
}

func (dto CreateExpenseDTO) Validate() error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return internal.NewValidationError(fmt.Sprintf("field %s is required", jsonFieldName(fieldErrs[0].Field())))
	}
	return internal.NewValidationError("invalid request payload")
}

func jsonFieldName(structField string) string {
	switch structField {
	case "Amount":
		return "amount"
	case "Category":
		return "category"
	case "UserID":
		return "user_id"
	default:
		return structField
	}
}
