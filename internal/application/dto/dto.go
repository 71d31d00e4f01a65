package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ComputeQuoteRequest carries the loan parameters a quote is computed from.
type ComputeQuoteRequest struct {
	TenantID        string          `json:"tenant_id"`
	Principal       decimal.Decimal `json:"principal"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	ResidualPercent decimal.Decimal `json:"residual_percent"`
	AnnualRateBps   int             `json:"annual_rate_bps"`
	TermMonths      int             `json:"term_months"`
	Instrument      string          `json:"instrument"`
}

// CompareLendersRequest carries the borrower inputs a catalogue comparison is
// resolved against.
type CompareLendersRequest struct {
	TenantID        string          `json:"tenant_id"`
	Principal       decimal.Decimal `json:"principal"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	ResidualPercent decimal.Decimal `json:"residual_percent"`
	TermMonths      int             `json:"term_months"`
	CreditScore     int             `json:"credit_score"`
}

// FinancialProfileRequest is the borrower's financial picture as submitted by
// the console. Zero-valued fields mean "not provided".
type FinancialProfileRequest struct {
	MaxDownPayment         decimal.Decimal `json:"max_down_payment"`
	MonthlyBudget          decimal.Decimal `json:"monthly_budget"`
	CashOnHand             decimal.Decimal `json:"cash_on_hand"`
	AnnualRevenue          decimal.Decimal `json:"annual_revenue"`
	CollateralValue        decimal.Decimal `json:"collateral_value"`
	PreferredTermMonths    int             `json:"preferred_term_months"`
	CreditScore            int             `json:"credit_score"`
	OperatingHistoryMonths int             `json:"operating_history_months"`
}

// MatchingParameterRequest is one weighted borrower preference.
type MatchingParameterRequest struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Weight int    `json:"weight"`
}

// SynthesizeStructuresRequest carries everything a synthesis run needs. When
// UseCatalogue is set the tenant's lender catalogue prices each candidate;
// otherwise AnnualRateBps is used as-is.
type SynthesizeStructuresRequest struct {
	TenantID        string                     `json:"tenant_id"`
	Principal       decimal.Decimal            `json:"principal"`
	ResidualPercent decimal.Decimal            `json:"residual_percent"`
	AnnualRateBps   int                        `json:"annual_rate_bps"`
	Instrument      string                     `json:"instrument"`
	Profile         FinancialProfileRequest    `json:"profile"`
	Matching        []MatchingParameterRequest `json:"matching"`
	UseCatalogue    bool                       `json:"use_catalogue"`
}

// UpsertRateProfileRequest creates or replaces a lender's rate policy. An
// empty ProfileID creates a new catalogue entry.
type UpsertRateProfileRequest struct {
	TenantID               string         `json:"tenant_id"`
	ProfileID              string         `json:"profile_id,omitempty"`
	Name                   string         `json:"name"`
	BaseRateBps            int            `json:"base_rate_bps"`
	TermAdjustments        map[int]int    `json:"term_adjustments"`
	CreditTierAdjustments  map[string]int `json:"credit_tier_adjustments"`
	DownPaymentAdjustments map[int]int    `json:"down_payment_adjustments"`
}

// GetRateProfileRequest identifies a rate profile to retrieve.
type GetRateProfileRequest struct {
	TenantID  string `json:"tenant_id"`
	ProfileID string `json:"profile_id"`
}

// ListRateProfilesRequest identifies a tenant's catalogue.
type ListRateProfilesRequest struct {
	TenantID string `json:"tenant_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PaymentPeriodResponse represents a single amortization schedule entry.
type PaymentPeriodResponse struct {
	Index               int             `json:"index"`
	Payment             decimal.Decimal `json:"payment"`
	PrincipalPortion    decimal.Decimal `json:"principal_portion"`
	InterestPortion     decimal.Decimal `json:"interest_portion"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
}

// QuoteResponse is the external representation of a financing quote.
type QuoteResponse struct {
	ID             string                  `json:"id"`
	TenantID       string                  `json:"tenant_id"`
	FinancedAmount decimal.Decimal         `json:"financed_amount"`
	MonthlyPayment decimal.Decimal         `json:"monthly_payment"`
	TotalInterest  decimal.Decimal         `json:"total_interest"`
	TotalPayments  decimal.Decimal         `json:"total_payments"`
	ResidualValue  decimal.Decimal         `json:"residual_value"`
	AnnualRateBps  int                     `json:"annual_rate_bps"`
	TermMonths     int                     `json:"term_months"`
	Instrument     string                  `json:"instrument"`
	Schedule       []PaymentPeriodResponse `json:"schedule,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// LenderQuoteResponse is one lender's resolved offer in a comparison.
type LenderQuoteResponse struct {
	LenderID         string          `json:"lender_id"`
	LenderName       string          `json:"lender_name"`
	EffectiveRateBps int             `json:"effective_rate_bps"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
}

// CompareLendersResponse is the ordered comparison across a catalogue,
// cheapest monthly payment first.
type CompareLendersResponse struct {
	TenantID string                `json:"tenant_id"`
	Quotes   []LenderQuoteResponse `json:"quotes"`
}

// CandidateResponse is one named, scored deal structure.
type CandidateResponse struct {
	Name                 string          `json:"name"`
	RecommendationReason string          `json:"recommendation_reason"`
	Instrument           string          `json:"instrument"`
	TermMonths           int             `json:"term_months"`
	RateBps              int             `json:"rate_bps"`
	DownPayment          decimal.Decimal `json:"down_payment"`
	DownPaymentPercent   decimal.Decimal `json:"down_payment_percent"`
	MonthlyPayment       decimal.Decimal `json:"monthly_payment"`
	TotalInterest        decimal.Decimal `json:"total_interest"`
	ResidualValue        decimal.Decimal `json:"residual_value"`
	ResidualValuePercent decimal.Decimal `json:"residual_value_percent"`
	MatchScore           float64         `json:"match_score"`
}

// SynthesizeStructuresResponse is a ranked synthesis run, best score first.
type SynthesizeStructuresResponse struct {
	TenantID   string              `json:"tenant_id"`
	Status     string              `json:"status"`
	Candidates []CandidateResponse `json:"candidates"`
}

// RateProfileResponse is the external representation of a lender rate policy.
type RateProfileResponse struct {
	ID                     string         `json:"id"`
	TenantID               string         `json:"tenant_id"`
	Name                   string         `json:"name"`
	BaseRateBps            int            `json:"base_rate_bps"`
	TermAdjustments        map[int]int    `json:"term_adjustments"`
	CreditTierAdjustments  map[string]int `json:"credit_tier_adjustments"`
	DownPaymentAdjustments map[int]int    `json:"down_payment_adjustments"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// ListRateProfilesResponse is a tenant's full lender catalogue.
type ListRateProfilesResponse struct {
	TenantID string                `json:"tenant_id"`
	Profiles []RateProfileResponse `json:"profiles"`
}
