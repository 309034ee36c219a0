package mysql

import (
	"context"
	"time"

	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Client").Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanNumber(ctx context.Context, loanNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Client").Where("loan_number = ?", loanNumber).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanNumberForUpdate(ctx context.Context, loanNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_number = ?", loanNumber).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) MaxRegNumber(ctx context.Context) (int, error) {
	var max *int
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("MAX(loan_reg_number)").
		Scan(&max)
	if res.Error != nil {
		return 0, res.Error
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *LoanRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_number LIKE ?", prefix+"%").
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Client").Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, s loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Client").
		Where("status = ?", s).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByClient(ctx context.Context, clientID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Client").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) DeleteByRegNumber(ctx context.Context, regNumber int) error {
	res := r.db.WithContext(ctx).
		Where("loan_reg_number = ?", regNumber).
		Delete(&loanDomain.Loan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
