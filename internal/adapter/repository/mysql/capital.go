package mysql

import (
	"context"
	"errors"
	"time"

	capitalDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"

	"gorm.io/gorm"
)

type CapitalRepository struct{ db *gorm.DB }

func NewCapitalRepository(db *gorm.DB) *CapitalRepository { return &CapitalRepository{db: db} }

func (r *CapitalRepository) Get(ctx context.Context) (*capitalDomain.Account, error) {
	var out capitalDomain.Account
	res := r.db.WithContext(ctx).Order("last_updated DESC").First(&out)
	return &out, res.Error
}

// ApplyDelta mutates the singleton balance with a single atomic UPDATE so
// concurrent debits/credits cannot lose each other's writes.
func (r *CapitalRepository) ApplyDelta(ctx context.Context, delta float64) error {
	res := r.db.WithContext(ctx).
		Model(&capitalDomain.Account{}).
		Where("1 = 1").
		Updates(map[string]any{
			"current_balance": gorm.Expr("current_balance + ?", delta),
			"last_updated":    time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CapitalRepository) Init(ctx context.Context, startingBalance float64) error {
	_, err := r.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	acct := &capitalDomain.Account{
		StartingBalance: startingBalance,
		CurrentBalance:  startingBalance,
		LastUpdated:     time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(acct).Error
}

func (r *CapitalRepository) AddInvestment(ctx context.Context, inv *capitalDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *CapitalRepository) ListInvestments(ctx context.Context) ([]capitalDomain.Investment, error) {
	var out []capitalDomain.Investment
	res := r.db.WithContext(ctx).Order("invest_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *CapitalRepository) AddExpense(ctx context.Context, e *capitalDomain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *CapitalRepository) ListExpenses(ctx context.Context, from, to time.Time) ([]capitalDomain.Expense, error) {
	var out []capitalDomain.Expense
	res := r.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", from, to).
		Order("expense_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
