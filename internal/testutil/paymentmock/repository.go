package paymentmock

import (
	"context"
	"time"

	domain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, p *domain.Payment) error
	ListByLoanFn      func(ctx context.Context, loanID uint64) ([]domain.Payment, error)
	CountByLoanFn     func(ctx context.Context, loanID uint64) (int64, error)
	SumByLoanFn       func(ctx context.Context, loanID uint64) (float64, error)
	ListByDateRangeFn func(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
	ListLatestFn      func(ctx context.Context, limit int) ([]domain.Payment, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.Payment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) CountByLoan(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountByLoanFn != nil {
		return m.CountByLoanFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Repo) SumByLoan(ctx context.Context, loanID uint64) (float64, error) {
	if m.SumByLoanFn != nil {
		return m.SumByLoanFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Repo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	if m.ListByDateRangeFn != nil {
		return m.ListByDateRangeFn(ctx, from, to)
	}
	return nil, nil
}

func (m *Repo) ListLatest(ctx context.Context, limit int) ([]domain.Payment, error) {
	if m.ListLatestFn != nil {
		return m.ListLatestFn(ctx, limit)
	}
	return nil, nil
}
