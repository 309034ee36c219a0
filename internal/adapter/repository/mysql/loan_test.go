package mysql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	"github.com/pasinduJDJ/lonex-investments/pkg/id"

	"gorm.io/gorm"
)

func makeLoan(loanNumber string, regNumber int) *domain.Loan {
	return &domain.Loan{
		LoanID:          id.NewID32(),
		LoanRegNumber:   regNumber,
		LoanNumber:      loanNumber,
		ClientID:        1,
		Type:            domain.TypeWeekly,
		PrincipalAmount: 10000,
		InterestRate:    20,
		DocumentCharge:  500,
		TotalAmountDue:  12000,
		TotalPaid:       0,
		RemainingAmount: 12000,
		Status:          domain.StatusActive,
		StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Installments:    9,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func TestLoanCreateAndGetByLoanNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("12-007-002-001", 1)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanNumber(ctx, "12-007-002-001")
	if err != nil {
		t.Fatalf("GetByLoanNumber: %v", err)
	}
	if got.LoanID != l.LoanID || got.TotalAmountDue != 12000 {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestLoanGetByLoanNumber_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanNumber(context.Background(), "12-000-000-999")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoanSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("12-007-002-001", 1)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.TotalPaid = 3000
	l.RemainingAmount = 9000
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanNumber(ctx, "12-007-002-001")
	if err != nil {
		t.Fatalf("GetByLoanNumber: %v", err)
	}
	if got.TotalPaid != 3000 || got.RemainingAmount != 9000 {
		t.Errorf("totals not updated: %+v", got)
	}
}

func TestLoanMaxRegNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	// empty table yields 0, not an error
	max, err := repo.MaxRegNumber(ctx)
	if err != nil {
		t.Fatalf("MaxRegNumber empty: %v", err)
	}
	if max != 0 {
		t.Fatalf("empty max = %d, want 0", max)
	}

	for _, reg := range []int{3, 41, 7} {
		if err := repo.Create(ctx, makeLoan(loanNumberFor(reg), reg)); err != nil {
			t.Fatalf("Create reg %d: %v", reg, err)
		}
	}
	max, err = repo.MaxRegNumber(ctx)
	if err != nil {
		t.Fatalf("MaxRegNumber: %v", err)
	}
	if max != 41 {
		t.Fatalf("max = %d, want 41", max)
	}
}

func loanNumberFor(seq int) string {
	return fmt.Sprintf("12-007-002-%03d", seq)
}

func TestLoanCountByNumberPrefix(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	seed := []struct {
		number string
		reg    int
	}{
		{"12-007-002-001", 1},
		{"12-007-002-002", 2},
		{"12-007-003-001", 3},
		{"12-001-002-001", 4},
	}
	for _, s := range seed {
		if err := repo.Create(ctx, makeLoan(s.number, s.reg)); err != nil {
			t.Fatalf("Create %s: %v", s.number, err)
		}
	}

	n, err := repo.CountByNumberPrefix(ctx, "12-007-002-")
	if err != nil {
		t.Fatalf("CountByNumberPrefix: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}

	n, err = repo.CountByNumberPrefix(ctx, "12-009-001-")
	if err != nil {
		t.Fatalf("CountByNumberPrefix empty: %v", err)
	}
	if n != 0 {
		t.Fatalf("empty prefix count = %d, want 0", n)
	}
}

func TestLoanDuplicateNumberIsTranslated(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeLoan("12-007-002-001", 1)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeLoan("12-007-002-001", 2))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestLoanListByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	active := makeLoan("12-007-002-001", 1)
	closed := makeLoan("12-007-002-002", 2)
	closed.Status = domain.StatusClosed
	for _, l := range []*domain.Loan{active, closed} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByStatus(ctx, domain.StatusClosed)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(got) != 1 || got[0].LoanNumber != "12-007-002-002" {
		t.Fatalf("unexpected closed list: %+v", got)
	}
}

func TestLoanDeleteByRegNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeLoan("12-007-002-001", 5)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.DeleteByRegNumber(ctx, 5); err != nil {
		t.Fatalf("DeleteByRegNumber: %v", err)
	}
	if _, err := repo.GetByLoanNumber(ctx, "12-007-002-001"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("loan still present after delete: %v", err)
	}

	if err := repo.DeleteByRegNumber(ctx, 5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for repeat delete, got %v", err)
	}
}
