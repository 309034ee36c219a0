package capital

import "time"

// Table: bank_capital. A singleton row holding the lendable balance. Every
// disbursement debits it, every collection credits it, expenses debit it and
// capital injections credit it. No lower bound: a negative balance is
// accepted business behavior.
type Account struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	StartingBalance float64   `gorm:"column:starting_balance;type:decimal(18,2);not null"`
	CurrentBalance  float64   `gorm:"column:current_balance;type:decimal(18,2);not null"`
	LastUpdated     time.Time `gorm:"column:last_updated;not null"`
	Remark          *string   `gorm:"column:remark;type:text"`
}

func (Account) TableName() string { return "bank_capital" }

// Table: investments. Append-only history of manual capital injections,
// kept for reporting only.
type Investment struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Amount     float64   `gorm:"column:amount;type:decimal(18,2);not null"`
	InvestDate time.Time `gorm:"column:invest_date;type:date;not null"`
	Remark     *string   `gorm:"column:remark;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Investment) TableName() string { return "investments" }

// Table: expenses. Append-only; each insert is coupled to a capital debit.
type Expense struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Amount      float64   `gorm:"column:amount;type:decimal(18,2);not null"`
	Remark      *string   `gorm:"column:remark;type:text"`
	ExpenseDate time.Time `gorm:"column:expense_date;type:date;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Expense) TableName() string { return "expenses" }
