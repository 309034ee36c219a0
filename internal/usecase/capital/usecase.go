// Package capital manages the singleton lendable balance: debits, credits,
// manual injections with their investment history, and the expense ledger.
package capital

import (
	"context"
	"errors"
	"strings"
	"time"

	capitalDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	capital capitalDomain.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(capital capitalDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{capital: capital, uow: tx}
}

type BalanceDTO struct {
	StartingBalance float64   `json:"starting_balance"`
	CurrentBalance  float64   `json:"current_balance"`
	LastUpdated     time.Time `json:"last_updated"`
	Remark          string    `json:"remark,omitempty"`
}

func (u *Usecase) Balance(ctx context.Context) (*BalanceDTO, error) {
	acct, err := u.capital.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("capital account", "singleton")
		}
		return nil, fault.WrapDataAccess("capital lookup", err)
	}
	dto := &BalanceDTO{
		StartingBalance: acct.StartingBalance,
		CurrentBalance:  acct.CurrentBalance,
		LastUpdated:     acct.LastUpdated,
	}
	if acct.Remark != nil {
		dto.Remark = *acct.Remark
	}
	return dto, nil
}

// Debit subtracts amount from the balance. No lower bound: the balance may
// go negative.
func (u *Usecase) Debit(ctx context.Context, amount float64) (*BalanceDTO, error) {
	return u.apply(ctx, -amount)
}

// Credit adds amount to the balance.
func (u *Usecase) Credit(ctx context.Context, amount float64) (*BalanceDTO, error) {
	return u.apply(ctx, amount)
}

func (u *Usecase) apply(ctx context.Context, delta float64) (*BalanceDTO, error) {
	if delta == 0 {
		return nil, fault.NewValidation("amount", "must be greater than 0")
	}
	if err := u.capital.ApplyDelta(ctx, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("capital account", "singleton")
		}
		return nil, fault.WrapDataAccess("capital update", err)
	}
	return u.Balance(ctx)
}

// Adjust credits the balance with a manual capital injection and appends
// the injection to the investment history, in one transaction.
func (u *Usecase) Adjust(ctx context.Context, amount float64, remark string) (*BalanceDTO, error) {
	if amount <= 0 {
		return nil, fault.NewValidation("amount", "must be greater than 0")
	}
	inv := &capitalDomain.Investment{
		Amount:     amount,
		InvestDate: time.Now().UTC(),
	}
	if r := strings.TrimSpace(remark); r != "" {
		inv.Remark = &r
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Capital.ApplyDelta(ctx, amount); err != nil {
			return err
		}
		return r.Capital.AddInvestment(ctx, inv)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("capital account", "singleton")
		}
		return nil, fault.WrapDataAccess("capital adjust", err)
	}
	return u.Balance(ctx)
}

type ExpenseInput struct {
	Amount      float64   `json:"amount"`
	Remark      string    `json:"remark"`
	ExpenseDate time.Time `json:"expense_date"`
}

// RecordExpense appends an expense row and debits the balance by its
// amount, in one transaction.
func (u *Usecase) RecordExpense(ctx context.Context, in ExpenseInput) (*BalanceDTO, error) {
	if in.Amount <= 0 {
		return nil, fault.NewValidation("amount", "must be greater than 0")
	}
	if in.ExpenseDate.IsZero() {
		return nil, fault.NewValidation("expense_date", "is required")
	}
	e := &capitalDomain.Expense{
		Amount:      in.Amount,
		ExpenseDate: in.ExpenseDate,
	}
	if r := strings.TrimSpace(in.Remark); r != "" {
		e.Remark = &r
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Capital.AddExpense(ctx, e); err != nil {
			return err
		}
		return r.Capital.ApplyDelta(ctx, -in.Amount)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("capital account", "singleton")
		}
		return nil, fault.WrapDataAccess("expense record", err)
	}
	return u.Balance(ctx)
}

func (u *Usecase) ListInvestments(ctx context.Context) ([]capitalDomain.Investment, error) {
	out, err := u.capital.ListInvestments(ctx)
	if err != nil {
		return nil, fault.WrapDataAccess("investment list", err)
	}
	return out, nil
}

func (u *Usecase) ListExpenses(ctx context.Context, from, to time.Time) ([]capitalDomain.Expense, error) {
	out, err := u.capital.ListExpenses(ctx, from, to)
	if err != nil {
		return nil, fault.WrapDataAccess("expense list", err)
	}
	return out, nil
}
