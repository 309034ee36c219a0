package loanmock

import (
	"context"
	"time"

	domain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. Only the
// methods a test fills in do anything; the rest are benign no-ops.
type Repo struct {
	CreateFn                   func(ctx context.Context, l *domain.Loan) error
	SaveFn                     func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn              func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanNumberFn          func(ctx context.Context, loanNumber string) (*domain.Loan, error)
	GetByLoanNumberForUpdateFn func(ctx context.Context, loanNumber string) (*domain.Loan, error)
	MaxRegNumberFn             func(ctx context.Context) (int, error)
	CountByNumberPrefixFn      func(ctx context.Context, prefix string) (int64, error)
	ListFn                     func(ctx context.Context) ([]domain.Loan, error)
	ListByStatusFn             func(ctx context.Context, s domain.Status) ([]domain.Loan, error)
	ListByClientFn             func(ctx context.Context, clientID uint64) ([]domain.Loan, error)
	ListByCreatedRangeFn       func(ctx context.Context, from, to time.Time) ([]domain.Loan, error)
	DeleteByRegNumberFn        func(ctx context.Context, regNumber int) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanNumber(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	if m.GetByLoanNumberFn != nil {
		return m.GetByLoanNumberFn(ctx, loanNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanNumberForUpdate(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	if m.GetByLoanNumberForUpdateFn != nil {
		return m.GetByLoanNumberForUpdateFn(ctx, loanNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) MaxRegNumber(ctx context.Context) (int, error) {
	if m.MaxRegNumberFn != nil {
		return m.MaxRegNumberFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	if m.CountByNumberPrefixFn != nil {
		return m.CountByNumberPrefixFn(ctx, prefix)
	}
	return 0, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) ListByClient(ctx context.Context, clientID uint64) ([]domain.Loan, error) {
	if m.ListByClientFn != nil {
		return m.ListByClientFn(ctx, clientID)
	}
	return nil, nil
}

func (m *Repo) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]domain.Loan, error) {
	if m.ListByCreatedRangeFn != nil {
		return m.ListByCreatedRangeFn(ctx, from, to)
	}
	return nil, nil
}

func (m *Repo) DeleteByRegNumber(ctx context.Context, regNumber int) error {
	if m.DeleteByRegNumberFn != nil {
		return m.DeleteByRegNumberFn(ctx, regNumber)
	}
	return nil
}
