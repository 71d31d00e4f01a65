package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

func validParameters() model.LoanParameters {
	return model.LoanParameters{
		Principal:     decimal.NewFromInt(100_000),
		DownPayment:   decimal.NewFromInt(10_000),
		AnnualRateBps: 599,
		TermMonths:    60,
		Instrument:    valueobject.InstrumentLoan,
	}
}

func TestLoanParameters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.LoanParameters)
		wantErr error
	}{
		{"valid parameters", func(*model.LoanParameters) {}, nil},
		{"zero principal", func(p *model.LoanParameters) {
			p.Principal = decimal.Zero
		}, model.ErrNonPositivePrincipal},
		{"negative rate", func(p *model.LoanParameters) {
			p.AnnualRateBps = -1
		}, model.ErrNegativeRate},
		{"zero term", func(p *model.LoanParameters) {
			p.TermMonths = 0
		}, model.ErrNonPositiveTerm},
		{"negative down payment", func(p *model.LoanParameters) {
			p.DownPayment = decimal.NewFromInt(-500)
		}, model.ErrInvalidDownPayment},
		{"down payment above principal", func(p *model.LoanParameters) {
			p.DownPayment = decimal.NewFromInt(100_001)
		}, model.ErrInvalidDownPayment},
		{"residual above 100 percent", func(p *model.LoanParameters) {
			p.ResidualPercent = decimal.NewFromInt(101)
		}, model.ErrInvalidResidual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParameters()
			tt.mutate(&params)

			err := params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoanParameters_FinancedAmount(t *testing.T) {
	t.Run("subtracts down payment and residual", func(t *testing.T) {
		params := model.LoanParameters{
			Principal:       decimal.NewFromInt(80_000),
			DownPayment:     decimal.NewFromInt(8_000),
			ResidualPercent: decimal.NewFromInt(25),
			AnnualRateBps:   499,
			TermMonths:      48,
		}

		// 80000 - 8000 - 80000*25% = 52000
		require.True(t, decimal.NewFromInt(20_000).Equal(params.ResidualValue()))
		assert.True(t, decimal.NewFromInt(52_000).Equal(params.FinancedAmount()))
	})

	t.Run("can be negative for degenerate combinations", func(t *testing.T) {
		params := model.LoanParameters{
			Principal:       decimal.NewFromInt(10_000),
			DownPayment:     decimal.NewFromInt(9_000),
			ResidualPercent: decimal.NewFromInt(50),
		}

		assert.True(t, params.FinancedAmount().IsNegative())
	})
}

func TestLoanParameters_DownPaymentPercent(t *testing.T) {
	params := model.LoanParameters{
		Principal:   decimal.NewFromInt(100_000),
		DownPayment: decimal.NewFromInt(12_500),
	}
	assert.True(t, decimal.NewFromFloat(12.5).Equal(params.DownPaymentPercent()))

	zero := model.LoanParameters{}
	assert.True(t, zero.DownPaymentPercent().IsZero())
}
