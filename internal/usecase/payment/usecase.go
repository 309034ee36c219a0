// Package payment implements the payment ledger: applying a collection
// against a loan while keeping totals, status and the capital account in
// lock-step.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	capitalDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/uow"
	"github.com/pasinduJDJ/lonex-investments/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans    loanDomain.Repository
	payments paymentDomain.Repository
	capital  capitalDomain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(loans loanDomain.Repository, payments paymentDomain.Repository, capital capitalDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, capital: capital, uow: tx}
}

type RecordInput struct {
	LoanNumber string    `json:"loan_number"`
	PaidAmount float64   `json:"paid_amount"`
	PaidDate   time.Time `json:"paid_date"`
	Remark     string    `json:"remark"`
}

type PaymentDTO struct {
	PaymentID  string    `json:"payment_id"`
	LoanNumber string    `json:"loan_number"`
	PaidAmount float64   `json:"paid_amount"`
	PaidDate   time.Time `json:"paid_date"`
	Remark     string    `json:"remark,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Result is the outcome of recording a payment: the stored payment plus the
// loan snapshot after the fold, and whether this payment closed the loan.
type Result struct {
	Payment PaymentDTO `json:"payment"`
	Loan    LoanState  `json:"loan"`
	Closed  bool       `json:"closed"`
}

type LoanState struct {
	LoanNumber      string  `json:"loan_number"`
	TotalAmountDue  float64 `json:"total_amount_due"`
	TotalPaid       float64 `json:"total_paid"`
	RemainingAmount float64 `json:"remaining_amount"`
	Status          string  `json:"status"`
}

// Record applies a payment. The payment insert and the loan totals/status
// update commit in one row-locked transaction; the capital credit follows.
// A failed credit leaves the committed rows in place and surfaces as a
// PartialFailure alongside the result.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*Result, error) {
	if in.PaidAmount <= 0 {
		return nil, fault.NewValidation("paid_amount", "must be greater than 0")
	}
	if in.PaidDate.IsZero() {
		return nil, fault.NewValidation("paid_date", "is required")
	}

	var out Result
	err := u.uow.WithinLoanTx(ctx, in.LoanNumber, func(r uow.Repos, l *loanDomain.Loan) error {
		// bounds are checked against the remaining amount before this payment
		if in.PaidAmount > l.RemainingAmount {
			return fault.NewValidation("paid_amount",
				fmt.Sprintf("cannot exceed remaining amount (%.2f)", l.RemainingAmount))
		}

		remark := strings.TrimSpace(in.Remark)
		p := &paymentDomain.Payment{
			PaymentID:  id.NewID32(),
			LoanID:     l.ID,
			PaidAmount: in.PaidAmount,
			PaidDate:   in.PaidDate,
		}
		if remark != "" {
			p.Remark = &remark
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		wasActive := l.Status == loanDomain.StatusActive
		l.ApplyPayment(in.PaidAmount, time.Now().UTC())
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		out = Result{
			Payment: PaymentDTO{
				PaymentID:  p.PaymentID,
				LoanNumber: l.LoanNumber,
				PaidAmount: p.PaidAmount,
				PaidDate:   p.PaidDate,
				Remark:     remark,
				CreatedAt:  p.CreatedAt,
			},
			Loan: LoanState{
				LoanNumber:      l.LoanNumber,
				TotalAmountDue:  l.TotalAmountDue,
				TotalPaid:       l.TotalPaid,
				RemainingAmount: l.RemainingAmount,
				Status:          string(l.Status),
			},
			Closed: wasActive && l.Status == loanDomain.StatusClosed,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("loan", in.LoanNumber)
		}
		if fault.IsValidation(err) {
			return nil, err
		}
		return nil, fault.WrapDataAccess("payment record", err)
	}

	// Collection: credit the capital account. The committed payment and loan
	// update are never rolled back on a failed credit.
	if err := u.capital.ApplyDelta(ctx, in.PaidAmount); err != nil {
		return &out, &fault.PartialFailure{
			Committed: []string{"payment insert", "loan update"},
			Failed:    "capital credit",
			Err:       err,
		}
	}
	return &out, nil
}

// ListForLoan returns every payment recorded against the loan, newest first.
func (u *Usecase) ListForLoan(ctx context.Context, loanNumber string) ([]PaymentDTO, error) {
	l, err := u.loans.GetByLoanNumber(ctx, loanNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("loan", loanNumber)
		}
		return nil, fault.WrapDataAccess("loan lookup", err)
	}
	ps, err := u.payments.ListByLoan(ctx, l.ID)
	if err != nil {
		return nil, fault.WrapDataAccess("payment list", err)
	}
	out := make([]PaymentDTO, 0, len(ps))
	for i := range ps {
		dto := PaymentDTO{
			PaymentID:  ps[i].PaymentID,
			LoanNumber: l.LoanNumber,
			PaidAmount: ps[i].PaidAmount,
			PaidDate:   ps[i].PaidDate,
			CreatedAt:  ps[i].CreatedAt,
		}
		if ps[i].Remark != nil {
			dto.Remark = *ps[i].Remark
		}
		out = append(out, dto)
	}
	return out, nil
}
