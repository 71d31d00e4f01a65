package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Quote events
// ---------------------------------------------------------------------------

// QuoteComputed is raised when a financing quote has been computed for a set
// of loan parameters. It carries the quote summary only, never the schedule.
type QuoteComputed struct {
	events.BaseEvent
	FinancedAmount decimal.Decimal `json:"financed_amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	AnnualRateBps  int             `json:"annual_rate_bps"`
	TermMonths     int             `json:"term_months"`
}

func NewQuoteComputed(
	quoteID, tenantID string,
	financedAmount, monthlyPayment, totalInterest decimal.Decimal,
	annualRateBps, termMonths int, occurredAt time.Time,
) QuoteComputed {
	return QuoteComputed{
		BaseEvent:      events.NewBaseEventAt("financing.quote.computed", quoteID, "FinancingQuote", tenantID, occurredAt),
		FinancedAmount: financedAmount,
		MonthlyPayment: monthlyPayment,
		TotalInterest:  totalInterest,
		AnnualRateBps:  annualRateBps,
		TermMonths:     termMonths,
	}
}

// ---------------------------------------------------------------------------
// Lender catalogue events
// ---------------------------------------------------------------------------

// RateProfileUpserted is raised when a lender's rate policy is created or
// replaced in the catalogue.
type RateProfileUpserted struct {
	events.BaseEvent
	LenderName  string `json:"lender_name"`
	BaseRateBps int    `json:"base_rate_bps"`
}

func NewRateProfileUpserted(profileID, tenantID, lenderName string, baseRateBps int, occurredAt time.Time) RateProfileUpserted {
	return RateProfileUpserted{
		BaseEvent:   events.NewBaseEventAt("financing.rate_profile.upserted", profileID, "LenderRateProfile", tenantID, occurredAt),
		LenderName:  lenderName,
		BaseRateBps: baseRateBps,
	}
}

// LendersCompared is raised when a rate comparison across the catalogue has
// been produced for a borrower request.
type LendersCompared struct {
	events.BaseEvent
	BestLenderName string          `json:"best_lender_name"`
	BestPayment    decimal.Decimal `json:"best_monthly_payment"`
	LenderCount    int             `json:"lender_count"`
}

func NewLendersCompared(comparisonID, tenantID string, lenderCount int, bestLenderName string, bestPayment decimal.Decimal, occurredAt time.Time) LendersCompared {
	return LendersCompared{
		BaseEvent:      events.NewBaseEventAt("financing.lenders.compared", comparisonID, "LenderComparison", tenantID, occurredAt),
		BestLenderName: bestLenderName,
		BestPayment:    bestPayment,
		LenderCount:    lenderCount,
	}
}

// ---------------------------------------------------------------------------
// Synthesis events
// ---------------------------------------------------------------------------

// RankedCandidate is a compact projection of one scored structure for the
// activity stream.
type RankedCandidate struct {
	Name           string          `json:"name"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	MatchScore     float64         `json:"match_score"`
}

// StructuresRanked is raised when a synthesis run has produced and ranked its
// candidate structures.
type StructuresRanked struct {
	events.BaseEvent
	Principal  decimal.Decimal   `json:"principal"`
	Candidates []RankedCandidate `json:"candidates"`
}

func NewStructuresRanked(runID, tenantID string, principal decimal.Decimal, candidates []RankedCandidate, occurredAt time.Time) StructuresRanked {
	return StructuresRanked{
		BaseEvent:  events.NewBaseEventAt("financing.structures.ranked", runID, "SynthesisRun", tenantID, occurredAt),
		Principal:  principal,
		Candidates: candidates,
	}
}
