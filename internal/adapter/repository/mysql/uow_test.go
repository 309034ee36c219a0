package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/uow"
	"github.com/pasinduJDJ/lonex-investments/pkg/id"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		max, err := r.Loans.MaxRegNumber(ctx)
		if err != nil {
			return err
		}
		l := makeLoan("12-007-002-001", max+1)
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := loanRepo.GetByLoanNumber(ctx, "12-007-002-001"); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	sentinel := errors.New("boom")
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan("12-007-002-001", 1)); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := loanRepo.GetByLoanNumber(ctx, "12-007-002-001"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected loan absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLoanTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	payRepo := NewPaymentRepository(db)

	seed := makeLoan("12-007-002-001", 1)
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	if err := guow.WithinLoanTx(ctx, "12-007-002-001", func(r uow.Repos, l *loanDomain.Loan) error {
		if l == nil || l.LoanNumber != "12-007-002-001" || l.Status != loanDomain.StatusActive {
			t.Fatalf("unexpected loan passed to fn: %+v", l)
		}
		if err := r.Payments.Create(ctx, &paymentDomain.Payment{
			PaymentID:  id.NewID32(),
			LoanID:     l.ID,
			PaidAmount: 12000,
			PaidDate:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			return err
		}
		l.ApplyPayment(12000, time.Now().UTC())
		return r.Loans.Save(ctx, l)
	}); err != nil {
		t.Fatalf("WithinLoanTx commit err: %v", err)
	}

	got, err := loanRepo.GetByLoanNumber(ctx, "12-007-002-001")
	if err != nil {
		t.Fatalf("GetByLoanNumber post-commit: %v", err)
	}
	if got.Status != loanDomain.StatusClosed || got.RemainingAmount != 0 {
		t.Fatalf("loan not settled: %+v", got)
	}
	n, err := payRepo.CountByLoan(ctx, got.ID)
	if err != nil {
		t.Fatalf("CountByLoan: %v", err)
	}
	if n != 1 {
		t.Fatalf("payments = %d, want 1", n)
	}
}

func TestGormUoW_WithinLoanTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	seed := makeLoan("12-007-002-001", 1)
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	sentinel := errors.New("stop")
	_ = guow.WithinLoanTx(ctx, "12-007-002-001", func(r uow.Repos, l *loanDomain.Loan) error {
		if err := r.Payments.Create(ctx, &paymentDomain.Payment{
			PaymentID:  id.NewID32(),
			LoanID:     l.ID,
			PaidAmount: 3000,
			PaidDate:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			return err
		}
		l.ApplyPayment(3000, time.Now().UTC())
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := loanRepo.GetByLoanNumber(ctx, "12-007-002-001")
	if err != nil {
		t.Fatalf("post-rollback GetByLoanNumber: %v", err)
	}
	if got.TotalPaid != 0 || got.RemainingAmount != 12000 {
		t.Fatalf("loan mutated after rollback: %+v", got)
	}
	n, err := NewPaymentRepository(db).CountByLoan(ctx, got.ID)
	if err != nil {
		t.Fatalf("CountByLoan: %v", err)
	}
	if n != 0 {
		t.Fatalf("payment survived rollback")
	}
}

func TestGormUoW_WithinLoanTx_LoanNotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(context.Background(), "12-000-000-999", func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatalf("callback should not run when loan missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
