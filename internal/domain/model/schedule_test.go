package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/financing-service/internal/domain/model"
)

func TestComputePayment_AnnuityFormula(t *testing.T) {
	// $100,000 at 5.99% (599 bps) for 60 months.
	payment := model.ComputePayment(decimal.NewFromInt(100_000), 60, 599)

	expected := decimal.NewFromFloat(1933.28)
	assert.True(t,
		payment.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"payment should be approximately $1,933.28, got %s", payment,
	)
}

func TestComputePayment_ZeroRate(t *testing.T) {
	// $50,000 at 0% for 36 months divides evenly with two-decimal rounding.
	payment := model.ComputePayment(decimal.NewFromInt(50_000), 36, 0)

	assert.True(t, decimal.NewFromFloat(1388.89).Equal(payment),
		"zero-rate payment should be exactly $1,388.89, got %s", payment,
	)
}

func TestComputePayment_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		financed   decimal.Decimal
		termMonths int
	}{
		{"zero financed amount", decimal.Zero, 60},
		{"negative financed amount", decimal.NewFromInt(-1000), 60},
		{"zero term", decimal.NewFromInt(10_000), 0},
		{"negative term", decimal.NewFromInt(10_000), -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := model.ComputePayment(tt.financed, tt.termMonths, 599)
			assert.True(t, payment.IsZero(), "expected zero payment, got %s", payment)
		})
	}
}

func TestGenerateSchedule_FiveYearLoan(t *testing.T) {
	financed := decimal.NewFromInt(100_000)
	payment := model.ComputePayment(financed, 60, 599)
	schedule := model.GenerateSchedule(financed, 60, 599, payment)

	require.Len(t, schedule.Periods, 60)

	// First month interest = 100000 * 0.0599/12 = ~$499.17.
	first := schedule.Periods[0]
	assert.Equal(t, 1, first.Index)
	assert.True(t,
		first.InterestPortion.Sub(decimal.NewFromFloat(499.17)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"first interest should be approximately $499.17, got %s", first.InterestPortion,
	)

	// Final balance lands on exactly zero.
	last := schedule.Periods[59]
	assert.Equal(t, 60, last.Index)
	assert.True(t, last.RemainingBalance.Equal(decimal.Zero),
		"final remaining balance should be zero, got %s", last.RemainingBalance,
	)

	// Total interest over the life of the loan is about $15,996.80.
	assert.True(t,
		schedule.TotalInterest.Sub(decimal.NewFromFloat(15_996.80)).Abs().LessThan(decimal.NewFromInt(1)),
		"total interest should be approximately $15,996.80, got %s", schedule.TotalInterest,
	)
}

func TestGenerateSchedule_PrincipalConservation(t *testing.T) {
	financed := decimal.NewFromInt(100_000)
	payment := model.ComputePayment(financed, 60, 599)
	schedule := model.GenerateSchedule(financed, 60, 599, payment)

	totalPrincipal := decimal.Zero
	for _, p := range schedule.Periods {
		totalPrincipal = totalPrincipal.Add(p.PrincipalPortion)
	}
	assert.True(t, totalPrincipal.Equal(financed),
		"principal portions should sum to the financed amount, got %s", totalPrincipal,
	)
}

func TestGenerateSchedule_PaymentConsistency(t *testing.T) {
	financed := decimal.NewFromInt(30_000)
	payment := model.ComputePayment(financed, 48, 450)
	schedule := model.GenerateSchedule(financed, 48, 450, payment)

	// Every period carries the computed payment except the last, which
	// absorbs the rounding drift.
	for _, p := range schedule.Periods[:47] {
		assert.True(t, p.Payment.Equal(payment),
			"period %d payment should equal %s, got %s", p.Index, payment, p.Payment,
		)
		assert.True(t, p.PrincipalPortion.Add(p.InterestPortion).Equal(p.Payment),
			"period %d portions should sum to the payment", p.Index,
		)
	}
}

func TestGenerateSchedule_BalanceMonotonicity(t *testing.T) {
	financed := decimal.NewFromInt(25_000)
	payment := model.ComputePayment(financed, 36, 720)
	schedule := model.GenerateSchedule(financed, 36, 720, payment)

	prev := financed
	for _, p := range schedule.Periods {
		assert.True(t, p.RemainingBalance.LessThanOrEqual(prev),
			"balance must never increase, period %d", p.Index,
		)
		prev = p.RemainingBalance
	}
}

func TestGenerateSchedule_CumulativeTotals(t *testing.T) {
	financed := decimal.NewFromInt(40_000)
	payment := model.ComputePayment(financed, 24, 350)
	schedule := model.GenerateSchedule(financed, 24, 350, payment)

	runningPrincipal := decimal.Zero
	runningInterest := decimal.Zero
	for _, p := range schedule.Periods {
		runningPrincipal = runningPrincipal.Add(p.PrincipalPortion)
		runningInterest = runningInterest.Add(p.InterestPortion)
		assert.True(t, p.CumulativePrincipal.Equal(runningPrincipal),
			"cumulative principal mismatch at period %d", p.Index,
		)
		assert.True(t, p.CumulativeInterest.Equal(runningInterest),
			"cumulative interest mismatch at period %d", p.Index,
		)
	}

	assert.True(t, schedule.TotalInterest.Equal(runningInterest))
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	financed := decimal.NewFromInt(50_000)
	payment := model.ComputePayment(financed, 36, 0)
	schedule := model.GenerateSchedule(financed, 36, 0, payment)

	require.Len(t, schedule.Periods, 36)
	assert.True(t, schedule.TotalInterest.IsZero(),
		"zero-rate schedule should carry no interest, got %s", schedule.TotalInterest,
	)
	for _, p := range schedule.Periods {
		assert.True(t, p.InterestPortion.IsZero(), "interest should be zero at 0%% rate")
	}
	assert.True(t, schedule.Periods[35].RemainingBalance.Equal(decimal.Zero))
}

func TestGenerateSchedule_DegenerateInputs(t *testing.T) {
	schedule := model.GenerateSchedule(decimal.Zero, 60, 599, decimal.Zero)

	assert.True(t, schedule.IsEmpty())
	assert.True(t, schedule.TotalInterest.IsZero())
	assert.True(t, schedule.TotalPayments.IsZero())
}
