package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind selects which of the two independently stored transaction
// tables an operation works against. Incomes and expenses share this schema.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Table returns the table backing this kind.
func (k TransactionKind) Table() string {
	if k == KindExpense {
		return "expenses"
	}
	return "incomes"
}

// Label returns the display name used in response messages.
func (k TransactionKind) Label() string {
	if k == KindExpense {
		return "Expense"
	}
	return "Income"
}

// Transaction is a single income or expense record owned by exactly one user.
type Transaction struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	Title       string          `json:"title" gorm:"size:50;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Type        TransactionKind `json:"type" gorm:"type:varchar(10);not null"`
	Category    string          `json:"category" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"size:255;not null"`
	Date        time.Time       `json:"date" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
