package model

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

// LoanParameters is the immutable set of inputs a financing structure is
// computed from. Rates are carried in basis points (599 = 5.99%).
type LoanParameters struct {
	Principal       decimal.Decimal
	DownPayment     decimal.Decimal
	ResidualPercent decimal.Decimal
	AnnualRateBps   int
	TermMonths      int
	Instrument      valueobject.InstrumentType
}

var (
	ErrNonPositivePrincipal = errors.New("principal must be positive")
	ErrNegativeRate         = errors.New("annual rate must not be negative")
	ErrNonPositiveTerm      = errors.New("term months must be positive")
	ErrInvalidDownPayment   = errors.New("down payment must be between zero and the principal")
	ErrInvalidResidual      = errors.New("residual percent must be between 0 and 100")
)

// Validate checks boundary constraints. The schedule math itself tolerates
// degenerate inputs; validation belongs at the application boundary so that
// partially entered forms never crash the caller.
func (p LoanParameters) Validate() error {
	if p.Principal.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositivePrincipal
	}
	if p.AnnualRateBps < 0 {
		return ErrNegativeRate
	}
	if p.TermMonths <= 0 {
		return ErrNonPositiveTerm
	}
	if p.DownPayment.LessThan(decimal.Zero) || p.DownPayment.GreaterThan(p.Principal) {
		return ErrInvalidDownPayment
	}
	if p.ResidualPercent.LessThan(decimal.Zero) || p.ResidualPercent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidResidual
	}
	return nil
}

// FinancedAmount returns the base that actually amortizes:
//
//	principal - downPayment - principal * residualPercent / 100
//
// The result may be zero or negative for degenerate inputs; callers get an
// empty schedule in that case rather than an error.
func (p LoanParameters) FinancedAmount() decimal.Decimal {
	residual := p.ResidualValue()
	return p.Principal.Sub(p.DownPayment).Sub(residual)
}

// ResidualValue returns the portion of principal excluded from amortization.
func (p LoanParameters) ResidualValue() decimal.Decimal {
	if p.ResidualPercent.IsZero() {
		return decimal.Zero
	}
	return p.Principal.Mul(p.ResidualPercent).Div(decimal.NewFromInt(100)).Round(2)
}

// DownPaymentPercent returns the down payment as a percentage of principal.
func (p LoanParameters) DownPaymentPercent() decimal.Decimal {
	if p.Principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return p.DownPayment.Mul(decimal.NewFromInt(100)).Div(p.Principal).Round(2)
}
