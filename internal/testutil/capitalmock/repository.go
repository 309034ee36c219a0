package capitalmock

import (
	"context"
	"time"

	domain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies capital.Repository.
type Repo struct {
	GetFn             func(ctx context.Context) (*domain.Account, error)
	ApplyDeltaFn      func(ctx context.Context, delta float64) error
	InitFn            func(ctx context.Context, startingBalance float64) error
	AddInvestmentFn   func(ctx context.Context, inv *domain.Investment) error
	ListInvestmentsFn func(ctx context.Context) ([]domain.Investment, error)
	AddExpenseFn      func(ctx context.Context, e *domain.Expense) error
	ListExpensesFn    func(ctx context.Context, from, to time.Time) ([]domain.Expense, error)
}

func (m *Repo) Get(ctx context.Context) (*domain.Account, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ApplyDelta(ctx context.Context, delta float64) error {
	if m.ApplyDeltaFn != nil {
		return m.ApplyDeltaFn(ctx, delta)
	}
	return nil
}

func (m *Repo) Init(ctx context.Context, startingBalance float64) error {
	if m.InitFn != nil {
		return m.InitFn(ctx, startingBalance)
	}
	return nil
}

func (m *Repo) AddInvestment(ctx context.Context, inv *domain.Investment) error {
	if m.AddInvestmentFn != nil {
		return m.AddInvestmentFn(ctx, inv)
	}
	return nil
}

func (m *Repo) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	if m.ListInvestmentsFn != nil {
		return m.ListInvestmentsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) AddExpense(ctx context.Context, e *domain.Expense) error {
	if m.AddExpenseFn != nil {
		return m.AddExpenseFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListExpenses(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	if m.ListExpensesFn != nil {
		return m.ListExpensesFn(ctx, from, to)
	}
	return nil, nil
}
