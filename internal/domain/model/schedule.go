package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// PaymentPeriod is an immutable value object representing one period in a
// payment schedule.
type PaymentPeriod struct {
	Payment             decimal.Decimal
	PrincipalPortion    decimal.Decimal
	InterestPortion     decimal.Decimal
	RemainingBalance    decimal.Decimal
	CumulativePrincipal decimal.Decimal
	CumulativeInterest  decimal.Decimal
	Index               int
}

// PaymentSchedule is the full period-by-period amortization of a financed
// amount, together with derived totals. It is always rebuilt from scratch;
// no caller mutates it in place.
type PaymentSchedule struct {
	Periods       []PaymentPeriod
	TotalInterest decimal.Decimal
	TotalPayments decimal.Decimal
}

// IsEmpty reports whether the schedule holds no periods.
func (s PaymentSchedule) IsEmpty() bool { return len(s.Periods) == 0 }

// ComputePayment computes the fixed periodic payment for a financed amount.
//
// Parameters:
//   - financedAmount: the amount that amortizes
//   - termMonths:     number of monthly periods
//   - annualRateBps:  annual interest rate in basis points (599 = 5.99%)
//
// The calculation uses:
//
//	monthlyRate = annualRateBps / 10_000 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to an even split. Non-positive financed amount or
// term yields a zero payment; partially entered inputs are expected and are
// not an error.
func ComputePayment(financedAmount decimal.Decimal, termMonths, annualRateBps int) decimal.Decimal {
	if termMonths <= 0 || financedAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	monthlyRate := monthlyRateOf(annualRateBps)
	if monthlyRate == 0 {
		return financedAmount.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	// P * r * (1+r)^n / ((1+r)^n - 1), computed in float64 for the power
	// term, then back to decimal for monetary use.
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := financedAmount.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

// GenerateSchedule expands a fixed payment into a full amortization table.
//
// Each period earns interest on the remaining balance; the rest of the
// payment retires principal. The final period redefines its principal
// portion as the entire remaining balance so the schedule terminates at
// exactly zero regardless of rounding drift accumulated over the loop.
// Cumulative totals are running sums carried period to period, so a prefix
// of the schedule is self-consistent on its own.
func GenerateSchedule(financedAmount decimal.Decimal, termMonths, annualRateBps int, payment decimal.Decimal) PaymentSchedule {
	if termMonths <= 0 || financedAmount.LessThanOrEqual(decimal.Zero) {
		return PaymentSchedule{TotalInterest: decimal.Zero, TotalPayments: decimal.Zero}
	}

	monthlyRateDec := decimal.NewFromFloat(monthlyRateOf(annualRateBps))

	periods := make([]PaymentPeriod, 0, termMonths)
	remaining := financedAmount
	cumulativePrincipal := decimal.Zero
	cumulativeInterest := decimal.Zero
	totalPayments := decimal.Zero

	for index := 1; index <= termMonths; index++ {
		interest := remaining.Mul(monthlyRateDec).Round(2)
		principal := payment.Sub(interest)
		periodPayment := payment

		// Last period: absorb rounding drift so the balance lands on zero.
		if index == termMonths {
			principal = remaining
			periodPayment = principal.Add(interest)
		}

		remaining = remaining.Sub(principal)
		if index == termMonths || remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		cumulativePrincipal = cumulativePrincipal.Add(principal)
		cumulativeInterest = cumulativeInterest.Add(interest)
		totalPayments = totalPayments.Add(periodPayment)

		periods = append(periods, PaymentPeriod{
			Index:               index,
			Payment:             periodPayment,
			PrincipalPortion:    principal,
			InterestPortion:     interest,
			RemainingBalance:    remaining,
			CumulativePrincipal: cumulativePrincipal,
			CumulativeInterest:  cumulativeInterest,
		})
	}

	return PaymentSchedule{
		Periods:       periods,
		TotalInterest: cumulativeInterest,
		TotalPayments: totalPayments,
	}
}

// monthlyRateOf converts basis points to a monthly decimal rate.
func monthlyRateOf(annualRateBps int) float64 {
	return float64(annualRateBps) / 10_000.0 / 12.0
}
