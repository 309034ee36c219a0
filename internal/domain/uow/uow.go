package uow

import (
	"context"

	"github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/client"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
)

type Repos struct {
	Clients  client.Repository
	Loans    loan.Repository
	Payments payment.Repository
	Capital  capital.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanNumber string, fn func(r Repos, l *loan.Loan) error) error
}
