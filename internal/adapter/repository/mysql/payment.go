package mysql

import (
	"context"
	"time"

	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("paid_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) CountByLoan(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("loan_id = ?", loanID).
		Count(&n)
	return n, res.Error
}

func (r *PaymentRepository) SumByLoan(ctx context.Context, loanID uint64) (float64, error) {
	var sum *float64
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Select("SUM(paid_amount)").
		Where("loan_id = ?", loanID).
		Scan(&sum)
	if res.Error != nil {
		return 0, res.Error
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *PaymentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("paid_date >= ? AND paid_date <= ?", from, to).
		Order("paid_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListLatest(ctx context.Context, limit int) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Order("paid_date DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
