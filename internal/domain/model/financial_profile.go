package model

import (
	"github.com/shopspring/decimal"
)

// FinancialProfile is the borrower's financial picture as captured by the
// surrounding console. It is a read-only input to scoring and synthesis;
// nothing in this package mutates it. Zero-valued fields mean "not provided".
type FinancialProfile struct {
	MaxDownPayment         decimal.Decimal
	MonthlyBudget          decimal.Decimal
	CashOnHand             decimal.Decimal
	AnnualRevenue          decimal.Decimal
	CollateralValue        decimal.Decimal
	PreferredTermMonths    int
	CreditScore            int
	OperatingHistoryMonths int
}

// Matching parameter kinds understood by the match scorer.
const (
	MatchingTermPreference        = "term_preference"
	MatchingDownPaymentPreference = "down_payment_preference"
)

// MatchingParameter is one weighted borrower preference. Value carries the
// bucket label ("short", "minimal", ...) and Weight its importance in [0,100].
type MatchingParameter struct {
	Kind   string
	Value  string
	Weight int
}
