package mysql

import (
	"testing"
	"time"

	capitalDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
	clientDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/client"
	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly loans schema only for tests (no ENUM) ---

type loanSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	LoanID          string    `gorm:"size:32;column:loan_id;uniqueIndex:ux_loans_loan_id"`
	LoanRegNumber   int       `gorm:"column:loan_reg_number;uniqueIndex:ux_loans_loan_reg_number"`
	LoanNumber      string    `gorm:"size:20;column:loan_number;uniqueIndex:ux_loans_loan_number"`
	ClientID        uint64    `gorm:"column:client_id"`
	Type            string    `gorm:"type:text;column:loan_type"` // ← no enum
	PrincipalAmount float64   `gorm:"column:principal_amount"`
	InterestRate    float64   `gorm:"column:interest_rate"`
	DocumentCharge  float64   `gorm:"column:document_charge"`
	TotalAmountDue  float64   `gorm:"column:total_amount_due"`
	TotalPaid       float64   `gorm:"column:total_paid"`
	RemainingAmount float64   `gorm:"column:remaining_amount"`
	Status          string    `gorm:"type:text;column:status"` // ← no enum
	StartDate       time.Time `gorm:"column:start_date"`
	EndDate         time.Time `gorm:"column:end_date"`
	Installments    int       `gorm:"column:installments"`
	StatusUpdatedAt time.Time `gorm:"column:status_updated_at"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// loan schema plus the enum-free domain models directly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&loanSQLite{},
		&clientDomain.Client{},
		&paymentDomain.Payment{},
		&capitalDomain.Account{},
		&capitalDomain.Investment{},
		&capitalDomain.Expense{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
