package payment

import "time"

// Table: payments. Append-only: payments are never edited or deleted, a
// loan's financial state is always a fold over its payment rows.
type Payment struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	PaymentID string `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id"`
	// FK to loans.id (numeric)
	LoanID     uint64    `gorm:"column:loan_id;not null;index:idx_payments_loan"`
	PaidAmount float64   `gorm:"column:paid_amount;type:decimal(18,2);not null"`
	PaidDate   time.Time `gorm:"column:paid_date;type:date;not null"`
	Remark     *string   `gorm:"column:remark;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Payment) TableName() string { return "payments" }
