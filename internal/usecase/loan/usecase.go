// Package loan implements the loan lifecycle: creation with structured
// number minting and capital disbursement, idempotent closing, lookups and
// installment statistics.
package loan

import (
	"context"
	"errors"
	"time"

	"github.com/pasinduJDJ/lonex-investments/internal/codes"
	capitalDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/uow"
	"github.com/pasinduJDJ/lonex-investments/internal/schedule"
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

type CreateLoanInput struct {
	NICNumber       string          `json:"nic_number"`
	Type            loanDomain.Type `json:"loan_type"`
	PrincipalAmount float64         `json:"principal_amount"`
	InterestRate    float64         `json:"interest_rate"`
	DocumentCharge  float64         `json:"document_charge"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
}

type LoanDTO struct {
	LoanID          string          `json:"loan_id"`
	LoanRegNumber   int             `json:"loan_reg_number"`
	LoanRegNumberID string          `json:"loan_reg_number_id"` // zero-padded display form
	LoanNumber      string          `json:"loan_number"`
	ClientName      string          `json:"client_name,omitempty"`
	ClientNIC       string          `json:"client_nic,omitempty"`
	Type            loanDomain.Type `json:"loan_type"`
	PrincipalAmount float64         `json:"principal_amount"`
	InterestRate    float64         `json:"interest_rate"`
	DocumentCharge  float64         `json:"document_charge"`
	TotalAmountDue  float64         `json:"total_amount_due"`
	TotalPaid       float64         `json:"total_paid"`
	RemainingAmount float64         `json:"remaining_amount"`
	Status          string          `json:"status"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Installments    int             `json:"installments"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Create validates the terms, mints the loan number and registration
// number inside the insert transaction, and then debits the capital
// account by the principal. A failed debit after the committed insert is
// surfaced as a PartialFailure together with the created loan.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	totalDue := loanDomain.TotalDue(in.PrincipalAmount, in.InterestRate)
	sched, err := schedule.Compute(in.Type, in.StartDate, in.EndDate, totalDue)
	if err != nil {
		return nil, err
	}

	l := &loanDomain.Loan{
		LoanID:          id.NewID32(),
		Type:            in.Type,
		PrincipalAmount: in.PrincipalAmount,
		InterestRate:    in.InterestRate,
		DocumentCharge:  in.DocumentCharge,
		TotalAmountDue:  totalDue,
		TotalPaid:       0,
		RemainingAmount: totalDue,
		Status:          loanDomain.StatusActive,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Installments:    sched.Expected,
		StatusUpdatedAt: time.Now().UTC(),
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Clients.GetByNIC(ctx, in.NICNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NewNotFound("client", in.NICNumber)
			}
			return fault.WrapDataAccess("client NIC lookup", err)
		}
		l.ClientID = c.ID

		town, group := "", ""
		if c.TownTwo != nil {
			town = *c.TownTwo
		}
		if c.Group != nil {
			group = *c.Group
		}
		prefix := codes.LoanNumberPrefix(codes.TownCode(town), codes.GroupCode(group))
		n, err := r.Loans.CountByNumberPrefix(ctx, prefix)
		if err != nil {
			return fault.WrapDataAccess("loan number count", err)
		}
		l.LoanNumber = codes.FormatLoanNumber(codes.TownCode(town), codes.GroupCode(group), int(n)+1)

		maxReg, err := r.Loans.MaxRegNumber(ctx)
		if err != nil {
			return fault.WrapDataAccess("loan reg number lookup", err)
		}
		l.LoanRegNumber = maxReg + 1

		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fault.NewConflict("loan number " + l.LoanNumber + " already exists, retry")
		}
		if fault.IsNotFound(err) || fault.IsValidation(err) {
			return nil, err
		}
		var da *fault.DataAccess
		if errors.As(err, &da) {
			return nil, err
		}
		return nil, fault.WrapDataAccess("loan insert", err)
	}

	dto := u.toDTO(l)

	// Disbursement: the committed loan is not rolled back if the debit
	// fails; the caller gets the loan plus a distinguishable outcome.
	if err := u.capital.ApplyDelta(ctx, -in.PrincipalAmount); err != nil {
		return &dto, &fault.PartialFailure{
			Committed: []string{"loan insert"},
			Failed:    "capital debit",
			Err:       err,
		}
	}
	return &dto, nil
}

func (u *Usecase) GetByNumber(ctx context.Context, loanNumber string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanNumber(ctx, loanNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("loan", loanNumber)
		}
		return nil, fault.WrapDataAccess("loan lookup", err)
	}
	dto := u.toDTO(l)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, fault.WrapDataAccess("loan list", err)
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, u.toDTO(&ls[i]))
	}
	return out, nil
}

// Close marks the loan closed. Closing an already-closed loan is not an
// error; the same terminal snapshot comes back both times.
func (u *Usecase) Close(ctx context.Context, loanNumber string) (*LoanDTO, error) {
	var dto LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanNumber, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Close(time.Now().UTC()) {
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}
		dto = u.toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("loan", loanNumber)
		}
		return nil, fault.WrapDataAccess("loan close", err)
	}
	return &dto, nil
}

// InstallmentStats recomputes the schedule expectation for the loan and
// folds the recorded payments into amount-based progress.
func (u *Usecase) InstallmentStats(ctx context.Context, loanNumber string) (*schedule.Stats, error) {
	l, err := u.loans.GetByLoanNumber(ctx, loanNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("loan", loanNumber)
		}
		return nil, fault.WrapDataAccess("loan lookup", err)
	}
	sched, err := schedule.Compute(l.Type, l.StartDate, l.EndDate, l.TotalAmountDue)
	if err != nil {
		return nil, err
	}
	totalPaid, err := u.payments.SumByLoan(ctx, l.ID)
	if err != nil {
		return nil, fault.WrapDataAccess("payment sum", err)
	}
	st := sched.Progress(totalPaid)
	return &st, nil
}

func (u *Usecase) DeleteByRegNumber(ctx context.Context, regNumber int) error {
	if err := u.loans.DeleteByRegNumber(ctx, regNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NewNotFound("loan", codes.FormatRegisterNumber(regNumber))
		}
		return fault.WrapDataAccess("loan delete", err)
	}
	return nil
}

func validateCreate(in CreateLoanInput) error {
	if !in.Type.Valid() {
		return fault.NewValidation("loan_type", "must be daily, weekly or monthly")
	}
	if in.PrincipalAmount <= 0 {
		return fault.NewValidation("principal_amount", "must be greater than 0")
	}
	if in.InterestRate < 0 || in.InterestRate > 100 {
		return fault.NewValidation("interest_rate", "must be between 0 and 100")
	}
	if in.DocumentCharge < 0 {
		return fault.NewValidation("document_charge", "must not be negative")
	}
	if !in.StartDate.Before(in.EndDate) {
		return fault.NewValidation("date_range", "start date must be before end date")
	}
	return nil
}

func (u *Usecase) toDTO(l *loanDomain.Loan) LoanDTO {
	dto := LoanDTO{
		LoanID:          l.LoanID,
		LoanRegNumber:   l.LoanRegNumber,
		LoanRegNumberID: codes.FormatRegisterNumber(l.LoanRegNumber),
		LoanNumber:      l.LoanNumber,
		Type:            l.Type,
		PrincipalAmount: l.PrincipalAmount,
		InterestRate:    l.InterestRate,
		DocumentCharge:  l.DocumentCharge,
		TotalAmountDue:  l.TotalAmountDue,
		TotalPaid:       l.TotalPaid,
		RemainingAmount: l.RemainingAmount,
		Status:          string(l.Status),
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		Installments:    l.Installments,
		CreatedAt:       l.CreatedAt,
	}
	if l.Client.ID != 0 {
		dto.ClientName = l.Client.FullName()
		dto.ClientNIC = l.Client.NICNumber
	}
	return dto
}
