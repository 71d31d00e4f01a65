package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Lender rate policy catalogue
// ---------------------------------------------------------------------------

// LenderRateProfile is a lender's rate policy: a nominal base rate plus
// additive adjustment tables keyed by term, credit tier, and down payment
// percentage. All rates and adjustments are in basis points; adjustments may
// be negative.
type LenderRateProfile struct {
	ID                     string
	TenantID               string
	Name                   string
	BaseRateBps            int
	TermAdjustments        map[int]int
	CreditTierAdjustments  map[string]int
	DownPaymentAdjustments map[int]int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

var (
	ErrLenderNameRequired   = errors.New("lender name is required")
	ErrEmptyAdjustmentTable = errors.New("each adjustment table must have at least one bucket")
)

// Validate enforces the catalogue invariants: a named lender and non-empty
// adjustment tables, so that bucket resolution can never fail.
func (p LenderRateProfile) Validate() error {
	if p.Name == "" {
		return ErrLenderNameRequired
	}
	if len(p.TermAdjustments) == 0 || len(p.CreditTierAdjustments) == 0 || len(p.DownPaymentAdjustments) == 0 {
		return ErrEmptyAdjustmentTable
	}
	return nil
}

// RateRequest identifies the borrower-specific inputs a rate resolution is
// made against.
type RateRequest struct {
	TermMonths         int
	CreditTier         string
	DownPaymentPercent decimal.Decimal
}

// LenderQuote is one lender's resolved offer for a request, used to build an
// ordered comparison across a catalogue.
type LenderQuote struct {
	LenderID         string
	LenderName       string
	EffectiveRateBps int
	MonthlyPayment   decimal.Decimal
	TotalInterest    decimal.Decimal
}
