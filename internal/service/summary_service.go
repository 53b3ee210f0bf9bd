package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// Summary aggregates a user's records for the dashboard: overall balance,
// the running month, and expense totals per category.
type Summary struct {
	Balance           decimal.Decimal            `json:"balance"`
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	Month             MonthSummary               `json:"month"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
}

// MonthSummary holds the totals of a single calendar month.
type MonthSummary struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// SummaryService computes dashboard aggregates server-side so the arithmetic
// lives in exactly one place.
type SummaryService interface {
	Summarize(ctx context.Context, ownerID uuid.UUID) (*Summary, error)
}

type summaryService struct {
	incomeRepo  repository.TransactionRepository
	expenseRepo repository.TransactionRepository
	now         func() time.Time
}

// NewSummaryService builds a SummaryService over both transaction tables.
func NewSummaryService(incomeRepo, expenseRepo repository.TransactionRepository) SummaryService {
	return &summaryService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Summarize computes balance = sum(incomes) - sum(expenses) with exact decimal
// arithmetic, plus the current month's totals and per-category expense sums.
func (s *summaryService) Summarize(ctx context.Context, ownerID uuid.UUID) (*Summary, error) {
	incomes, err := s.incomeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	expenses, err := s.expenseRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	now := s.now()
	year, month := now.Year(), now.Month()

	summary := &Summary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		ExpenseByCategory: make(map[string]decimal.Decimal),
		Month: MonthSummary{
			Year:    year,
			Month:   int(month),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		},
	}

	for _, txn := range incomes {
		summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		if inMonth(txn, year, month) {
			summary.Month.Income = summary.Month.Income.Add(txn.Amount)
		}
	}
	for _, txn := range expenses {
		summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		if inMonth(txn, year, month) {
			summary.Month.Expense = summary.Month.Expense.Add(txn.Amount)
		}
		total, ok := summary.ExpenseByCategory[txn.Category]
		if !ok {
			total = decimal.Zero
		}
		summary.ExpenseByCategory[txn.Category] = total.Add(txn.Amount)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.Month.Balance = summary.Month.Income.Sub(summary.Month.Expense)

	return summary, nil
}

func inMonth(txn model.Transaction, year int, month time.Month) bool {
	return txn.Date.Year() == year && txn.Date.Month() == month
}
