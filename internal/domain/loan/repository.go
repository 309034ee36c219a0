package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanNumber(ctx context.Context, loanNumber string) (*Loan, error)
	// Row-locked variant for use inside a transaction.
	GetByLoanNumberForUpdate(ctx context.Context, loanNumber string) (*Loan, error)
	// MaxRegNumber returns 0 when no loans exist.
	MaxRegNumber(ctx context.Context) (int, error)
	// CountByNumberPrefix counts loans whose loan_number starts with prefix,
	// e.g. "12-007-002-".
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)
	// List returns all loans newest-first with the client preloaded.
	List(ctx context.Context) ([]Loan, error)
	ListByStatus(ctx context.Context, s Status) ([]Loan, error)
	ListByClient(ctx context.Context, clientID uint64) ([]Loan, error)
	ListByCreatedRange(ctx context.Context, from, to time.Time) ([]Loan, error)
	DeleteByRegNumber(ctx context.Context, regNumber int) error
}
