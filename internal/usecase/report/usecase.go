// Package report aggregates persisted loans and payments into read-only
// views: realized profit, delinquency, summary statistics, date-range and
// capital reports. Nothing here mutates state.
package report

import (
	"context"
	"time"

	capitalDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
	"github.com/pasinduJDJ/lonex-investments/internal/schedule"
)

type Usecase struct {
	loans    loanDomain.Repository
	payments paymentDomain.Repository
	capital  capitalDomain.Repository
}

func NewUsecase(loans loanDomain.Repository, payments paymentDomain.Repository, capital capitalDomain.Repository) *Usecase {
	return &Usecase{loans: loans, payments: payments, capital: capital}
}

type ProfitRow struct {
	LoanNumber       string  `json:"loan_number"`
	ClientName       string  `json:"client_name"`
	PrincipalAmount  float64 `json:"principal_amount"`
	DocumentCharge   float64 `json:"document_charge"`
	TotalPaid        float64 `json:"total_paid"`
	Profit           float64 `json:"profit"`
	ProfitPercentage float64 `json:"profit_percentage"`
}

type ProfitReport struct {
	Loans       []ProfitRow `json:"loans"`
	TotalProfit float64     `json:"total_profit"`
}

// Profit reports realized profit per closed loan and the aggregate.
// Profit is recognized only on closed loans.
func (u *Usecase) Profit(ctx context.Context) (*ProfitReport, error) {
	closed, err := u.loans.ListByStatus(ctx, loanDomain.StatusClosed)
	if err != nil {
		return nil, fault.WrapDataAccess("closed loan list", err)
	}
	out := &ProfitReport{Loans: make([]ProfitRow, 0, len(closed))}
	for i := range closed {
		l := &closed[i]
		profit := l.Profit()
		pct := 0.0
		if l.PrincipalAmount > 0 {
			pct = profit / l.PrincipalAmount * 100
		}
		out.Loans = append(out.Loans, ProfitRow{
			LoanNumber:       l.LoanNumber,
			ClientName:       l.Client.FullName(),
			PrincipalAmount:  l.PrincipalAmount,
			DocumentCharge:   l.DocumentCharge,
			TotalPaid:        l.TotalPaid,
			Profit:           profit,
			ProfitPercentage: pct,
		})
		out.TotalProfit += profit
	}
	return out, nil
}

type DelinquencyRow struct {
	LoanNumber           string `json:"loan_number"`
	ClientName           string `json:"client_name"`
	ClientMobile         string `json:"client_mobile,omitempty"`
	LoanType             string `json:"loan_type"`
	ExpectedInstallments int    `json:"expected_installments"`
	// Count of payment rows, deliberately not the amount-based paid
	// metric the scheduler reports.
	PaidInstallments int    `json:"paid_installments"`
	DelayCount       int    `json:"delay_count"`
	Status           string `json:"status"` // "Delayed" or "On Time"
}

// Delinquency compares each loan's expected installment count against the
// number of payments actually recorded. Report-only; loan state is never
// touched.
func (u *Usecase) Delinquency(ctx context.Context) ([]DelinquencyRow, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, fault.WrapDataAccess("loan list", err)
	}
	out := make([]DelinquencyRow, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		expected, err := schedule.ExpectedInstallments(l.Type, l.StartDate, l.EndDate)
		if err != nil {
			// a loan with an unusable range contributes nothing to the report
			continue
		}
		paidCount, err := u.payments.CountByLoan(ctx, l.ID)
		if err != nil {
			return nil, fault.WrapDataAccess("payment count", err)
		}
		delay := expected - int(paidCount)
		if delay < 0 {
			delay = 0
		}
		status := "On Time"
		if delay > 0 {
			status = "Delayed"
		}
		row := DelinquencyRow{
			LoanNumber:           l.LoanNumber,
			ClientName:           l.Client.FullName(),
			LoanType:             string(l.Type),
			ExpectedInstallments: expected,
			PaidInstallments:     int(paidCount),
			DelayCount:           delay,
			Status:               status,
		}
		if l.Client.MobileNumber != nil {
			row.ClientMobile = *l.Client.MobileNumber
		}
		out = append(out, row)
	}
	return out, nil
}

type Summary struct {
	TotalLoans              int     `json:"total_loans"`
	ActiveLoans             int     `json:"active_loans"`
	TotalLoanAmount         float64 `json:"total_loan_amount"`
	TotalPaidAmount         float64 `json:"total_paid_amount"`
	TotalRemainingAmount    float64 `json:"total_remaining_amount"`
	TotalProfit             float64 `json:"total_profit"`
	AverageProfitPercentage float64 `json:"average_profit_percentage"`
}

func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, fault.WrapDataAccess("loan list", err)
	}
	s := &Summary{TotalLoans: len(loans)}
	totalPrincipal := 0.0
	for i := range loans {
		l := &loans[i]
		if l.Status == loanDomain.StatusActive {
			s.ActiveLoans++
		}
		s.TotalLoanAmount += l.TotalAmountDue
		s.TotalPaidAmount += l.TotalPaid
		s.TotalRemainingAmount += l.RemainingAmount
		s.TotalProfit += l.Profit()
		totalPrincipal += l.PrincipalAmount
	}
	if totalPrincipal > 0 {
		s.AverageProfitPercentage = s.TotalProfit / totalPrincipal * 100
	}
	return s, nil
}

type DateRangeReport struct {
	StartDate          time.Time               `json:"start_date"`
	EndDate            time.Time               `json:"end_date"`
	Loans              []loanDomain.Loan       `json:"loans"`
	Payments           []paymentDomain.Payment `json:"payments"`
	TotalLoanAmount    float64                 `json:"total_loan_amount"`
	TotalPaymentAmount float64                 `json:"total_payment_amount"`
	TotalProfit        float64                 `json:"total_profit"`
}

func (u *Usecase) DateRange(ctx context.Context, from, to time.Time) (*DateRangeReport, error) {
	if !from.Before(to) {
		return nil, fault.NewValidation("date_range", "start date must be before end date")
	}
	loans, err := u.loans.ListByCreatedRange(ctx, from, to)
	if err != nil {
		return nil, fault.WrapDataAccess("loan range list", err)
	}
	pays, err := u.payments.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fault.WrapDataAccess("payment range list", err)
	}
	r := &DateRangeReport{StartDate: from, EndDate: to, Loans: loans, Payments: pays}
	for i := range loans {
		r.TotalLoanAmount += loans[i].TotalAmountDue
		r.TotalProfit += loans[i].Profit()
	}
	for i := range pays {
		r.TotalPaymentAmount += pays[i].PaidAmount
	}
	return r, nil
}

type CapitalReport struct {
	CurrentBalance       float64 `json:"current_balance"`
	TotalLoans           int     `json:"total_loans"`
	TotalRemainingAmount float64 `json:"total_remaining_amount"`
	// balance minus everything still out on loan
	CashFlow float64 `json:"cash_flow"`
}

func (u *Usecase) Capital(ctx context.Context) (*CapitalReport, error) {
	acct, err := u.capital.Get(ctx)
	if err != nil {
		return nil, fault.WrapDataAccess("capital lookup", err)
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, fault.WrapDataAccess("loan list", err)
	}
	r := &CapitalReport{CurrentBalance: acct.CurrentBalance, TotalLoans: len(loans)}
	for i := range loans {
		r.TotalRemainingAmount += loans[i].RemainingAmount
	}
	r.CashFlow = r.CurrentBalance - r.TotalRemainingAmount
	return r, nil
}

// LatestPayments returns the most recent payments for the dashboard.
func (u *Usecase) LatestPayments(ctx context.Context, limit int) ([]paymentDomain.Payment, error) {
	if limit <= 0 {
		limit = 10
	}
	out, err := u.payments.ListLatest(ctx, limit)
	if err != nil {
		return nil, fault.WrapDataAccess("latest payments", err)
	}
	return out, nil
}
