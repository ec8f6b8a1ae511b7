package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// ExpenseCategories lists the accepted expense categories
var ExpenseCategories = []string{
	constants.ExpenseCategoryPrint,
	constants.ExpenseCategoryCutting,
	constants.ExpenseCategoryPackaging,
	constants.ExpenseCategoryMiscellaneous,
}

// ExpenseService handles production expenses
type ExpenseService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(queries db.Querier) *ExpenseService {
	return &ExpenseService{
		queries: queries,
		logger:  logger.Log,
	}
}

// ListExpenses returns expenses by date, newest first
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]db.Expense, error) {
	expenses, err := s.queries.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// CreateExpense records an expense. A zero date means today.
func (s *ExpenseService) CreateExpense(ctx context.Context, p params.CreateExpenseParams) (*db.Expense, error) {
	category, err := normalizeExpenseCategory(p.Category)
	if err != nil {
		return nil, err
	}
	if p.Amount.IsNegative() {
		return nil, invalidf("amount must not be negative")
	}

	expense, err := s.queries.CreateExpense(ctx, db.CreateExpenseParams{
		Date:        dateOrToday(p.Date),
		Category:    category,
		Description: helpers.StringToNullableText(strings.TrimSpace(p.Description)),
		Amount:      helpers.DecimalToNumeric(p.Amount),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.Info("Expense recorded",
		zap.Int64("expense_id", expense.ID),
		zap.String("category", expense.Category))
	return &expense, nil
}

// UpdateExpense applies a partial update
func (s *ExpenseService) UpdateExpense(ctx context.Context, p params.UpdateExpenseParams) (*db.Expense, error) {
	arg := db.UpdateExpenseParams{
		ID:          p.ID,
		Description: helpers.StringPtrToNullableText(p.Description),
		Amount:      helpers.DecimalPtrToNumeric(p.Amount),
	}
	if p.Category != nil {
		category, err := normalizeExpenseCategory(*p.Category)
		if err != nil {
			return nil, err
		}
		arg.Category = helpers.StringToNullableText(category)
	}
	if p.Amount != nil && p.Amount.IsNegative() {
		return nil, invalidf("amount must not be negative")
	}
	if p.Date != nil {
		arg.Date = helpers.TimeToDate(*p.Date)
	}

	expense, err := s.queries.UpdateExpense(ctx, arg)
	if err != nil {
		return nil, notFound(err, ErrExpenseNotFound, "failed to update expense")
	}
	return &expense, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// GetTotals sums expenses per category
func (s *ExpenseService) GetTotals(ctx context.Context) (*business.ExpenseTotals, error) {
	row, err := s.queries.GetExpenseTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense totals: %w", err)
	}
	return &business.ExpenseTotals{
		Print:         helpers.NumericToDecimal(row.PrintTotal),
		Cutting:       helpers.NumericToDecimal(row.CuttingTotal),
		Packaging:     helpers.NumericToDecimal(row.PackagingTotal),
		Miscellaneous: helpers.NumericToDecimal(row.MiscellaneousTotal),
		Total:         helpers.NumericToDecimal(row.Total),
	}, nil
}

func normalizeExpenseCategory(category string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(category))
	for _, allowed := range ExpenseCategories {
		if c == allowed {
			return c, nil
		}
	}
	return "", invalidf("category must be one of %s", strings.Join(ExpenseCategories, ", "))
}

func dateOrToday(t time.Time) pgtype.Date {
	if t.IsZero() {
		t = helpers.NowInStoreTZ()
	}
	return helpers.TimeToDate(t)
}
