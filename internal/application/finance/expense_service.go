package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hisabat/backend/internal/domain/finance"
	"github.com/hisabat/backend/internal/domain/shared"
)

// ExpenseService handles expense CRUD operations
type ExpenseService struct {
	expenses finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenses finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := finance.NewExpense(req.Date, req.Amount, req.Category, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expenseResponse(expense), nil
}

// Get returns a single expense
func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return expenseResponse(expense), nil
}

// List returns all expenses
func (s *ExpenseService) List(ctx context.Context) ([]*ExpenseResponse, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = expenseResponse(e)
	}
	return out, nil
}

// Update applies a partial update to an expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if *req.Date == "" {
			return nil, shared.NewDomainError("INVALID_DATE", "Expense date cannot be empty")
		}
		expense.Date = *req.Date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	expense.UpdatedAt = time.Now()

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expenseResponse(expense), nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.expenses.Delete(ctx, id)
}
