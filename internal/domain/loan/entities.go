package loan

import (
	"time"

	"github.com/pasinduJDJ/lonex-investments/internal/domain/client"
)

type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return true
	}
	return false
}

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

type Loan struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	LoanID string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id"`
	// Globally dense sequence, the document-facing loan ID
	LoanRegNumber int `gorm:"column:loan_reg_number;not null;uniqueIndex:ux_loans_loan_reg_number"`
	// Structured code "12-<town>-<group>-<seq>"
	LoanNumber string `gorm:"column:loan_number;size:20;not null;uniqueIndex:ux_loans_loan_number"`
	// FK to clients.id (numeric)
	ClientID uint64        `gorm:"column:client_id;not null;index:idx_loans_client"`
	Client   client.Client `gorm:"foreignKey:ClientID;references:ID"`

	Type            Type      `gorm:"column:loan_type;type:enum('daily','weekly','monthly');not null"`
	PrincipalAmount float64   `gorm:"column:principal_amount;type:decimal(18,2);not null"`
	InterestRate    float64   `gorm:"column:interest_rate;type:decimal(6,2);not null"`
	DocumentCharge  float64   `gorm:"column:document_charge;type:decimal(18,2);not null;default:0"`
	TotalAmountDue  float64   `gorm:"column:total_amount_due;type:decimal(18,2);not null"`
	TotalPaid       float64   `gorm:"column:total_paid;type:decimal(18,2);not null;default:0"`
	RemainingAmount float64   `gorm:"column:remaining_amount;type:decimal(18,2);not null"`
	Status          Status    `gorm:"column:status;type:enum('active','closed');default:'active'"`
	StartDate       time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate         time.Time `gorm:"column:end_date;type:date;not null"`
	// Expected installment count at creation time, kept for documents
	Installments int `gorm:"column:installments;not null;default:0"`

	StatusUpdatedAt time.Time `gorm:"column:status_updated_at"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Loan) TableName() string { return "loans" }

// ApplyPayment folds amount into the running totals and flips the status to
// closed when nothing remains. active -> closed only; an already-closed
// loan never reopens here.
func (l *Loan) ApplyPayment(amount float64, now time.Time) {
	l.TotalPaid += amount
	l.RemainingAmount = l.TotalAmountDue - l.TotalPaid
	if l.RemainingAmount <= 0 && l.Status == StatusActive {
		l.Status = StatusClosed
		l.StatusUpdatedAt = now
	}
}

// Close marks the loan closed. Closing an already-closed loan is a no-op;
// the transition is one-directional.
func (l *Loan) Close(now time.Time) bool {
	if l.Status == StatusClosed {
		return false
	}
	l.Status = StatusClosed
	l.StatusUpdatedAt = now
	return true
}

// Profit realized on this loan: collections minus principal and the
// document charge. Only counted toward totals once the loan is closed.
func (l *Loan) Profit() float64 {
	return l.TotalPaid - (l.PrincipalAmount + l.DocumentCharge)
}

// TotalDue is the authoritative amount owed at creation time:
// principal plus flat interest. The document charge is collected up front
// and is deliberately NOT part of the repayable total.
func TotalDue(principal, interestRate float64) float64 {
	return principal + principal*interestRate/100
}

// TotalReceivable is the alternative view that folds the document charge
// into the amount owed. Kept for reporting only; TotalDue is what loans
// are created with.
func TotalReceivable(principal, interestRate, documentCharge float64) float64 {
	return TotalDue(principal, interestRate) + documentCharge
}
