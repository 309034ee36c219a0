package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanNumber: "12-007-002-001"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByLoanNumber(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{LoanNumber: "12-007-002-002"}

	called := false
	m := &Repo{
		GetByLoanNumberFn: func(gotCtx context.Context, loanNumber string) (*domain.Loan, error) {
			called = true
			if loanNumber != "12-007-002-002" {
				t.Fatalf("GetByLoanNumber arg mismatch: got %s", loanNumber)
			}
			return want, nil
		},
	}
	got, err := m.GetByLoanNumber(ctx, "12-007-002-002")
	if err != nil {
		t.Fatalf("GetByLoanNumber: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByLoanNumber: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByLoanNumberFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByLoanNumber(ctx, "12-007-002-002")
	if err != context.Canceled {
		t.Fatalf("GetByLoanNumber default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByLoanNumber default: want nil loan, got %+v", got)
	}
}

func TestRepo_CountDefaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	// Defaults for counting methods are benign zeros, not errors, so a
	// usecase under test can mint first-in-sequence identifiers.
	max, err := m.MaxRegNumber(ctx)
	if err != nil || max != 0 {
		t.Fatalf("MaxRegNumber default = %d, %v", max, err)
	}
	n, err := m.CountByNumberPrefix(ctx, "12-007-002-")
	if err != nil || n != 0 {
		t.Fatalf("CountByNumberPrefix default = %d, %v", n, err)
	}
}
