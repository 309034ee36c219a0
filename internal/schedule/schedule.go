// Package schedule computes expected installment counts and per-installment
// amounts from a loan's cadence and date range. Everything here is pure;
// callers pass the already-resolved total amount due and the fold of
// recorded payments.
package schedule

import (
	"math"
	"time"

	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
)

// Schedule is the expectation derived from a loan's parameters.
type Schedule struct {
	Expected int `json:"expected"`
	// Per-installment amount, rounded to the nearest currency unit with
	// ties away from zero.
	InstallmentAmount float64 `json:"installment_amount"`
}

// Stats extends Schedule with the amount-based progress of a loan.
type Stats struct {
	Expected          int     `json:"expected"`
	Paid              int     `json:"paid"`
	Remaining         int     `json:"remaining"`
	TotalPaid         float64 `json:"total_paid"`
	InstallmentAmount float64 `json:"installment_amount"`
}

// Compute derives the schedule for the given cadence and date range.
// start must be strictly before end.
func Compute(t loan.Type, start, end time.Time, totalDue float64) (Schedule, error) {
	expected, err := ExpectedInstallments(t, start, end)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{
		Expected:          expected,
		InstallmentAmount: installmentAmount(totalDue, expected),
	}, nil
}

// ExpectedInstallments returns the number of installments the date range
// implies for the cadence, minimum 1.
func ExpectedInstallments(t loan.Type, start, end time.Time) (int, error) {
	if !start.Before(end) {
		return 0, fault.NewValidation("date_range", "start date must be before end date")
	}
	days := daysBetween(start, end)
	switch t {
	case loan.TypeDaily:
		return max1(days), nil
	case loan.TypeWeekly:
		weeks := days / 7
		if days%7 > 0 {
			weeks++
		}
		return max1(weeks), nil
	case loan.TypeMonthly:
		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		// The final month only counts once the start day-of-month has
		// passed again.
		if end.Day() < start.Day() {
			months--
		}
		return max1(months), nil
	default:
		return 0, fault.NewValidation("loan_type", "unknown loan type "+string(t))
	}
}

// Progress computes the amount-based installment progress: paid
// installments are the whole installments covered by the running total of
// payments, not the count of payment rows.
func (s Schedule) Progress(totalPaid float64) Stats {
	paid := 0
	if s.InstallmentAmount > 0 {
		paid = int(math.Floor(totalPaid / s.InstallmentAmount))
	}
	remaining := s.Expected - paid
	if remaining < 0 {
		remaining = 0
	}
	return Stats{
		Expected:          s.Expected,
		Paid:              paid,
		Remaining:         remaining,
		TotalPaid:         totalPaid,
		InstallmentAmount: s.InstallmentAmount,
	}
}

func installmentAmount(totalDue float64, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	// math.Round rounds half away from zero.
	return math.Round(totalDue / float64(expected))
}

// daysBetween counts calendar days from start to end, comparing at
// midnight UTC so a time-of-day component can never skew the count.
func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(e.Sub(s).Hours() / 24))
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
