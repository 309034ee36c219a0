package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByLoan(ctx context.Context, loanID uint64) ([]Payment, error)
	CountByLoan(ctx context.Context, loanID uint64) (int64, error)
	SumByLoan(ctx context.Context, loanID uint64) (float64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Payment, error)
	// ListLatest returns the most recent payments by paid date.
	ListLatest(ctx context.Context, limit int) ([]Payment, error)
}
