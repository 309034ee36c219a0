package capital

import (
	"context"
	"time"
)

type Repository interface {
	// Get returns the singleton account row.
	Get(ctx context.Context) (*Account, error)
	// ApplyDelta adds delta (negative for a debit) to the current balance
	// and stamps last_updated, as a single atomic increment at the storage
	// layer so concurrent mutations cannot lose updates.
	ApplyDelta(ctx context.Context, delta float64) error
	// Init seeds the singleton row if it does not exist yet.
	Init(ctx context.Context, startingBalance float64) error

	AddInvestment(ctx context.Context, inv *Investment) error
	ListInvestments(ctx context.Context) ([]Investment, error)

	AddExpense(ctx context.Context, e *Expense) error
	ListExpenses(ctx context.Context, from, to time.Time) ([]Expense, error)
}
