package model

import (
	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

// Candidate structure names produced by the synthesizer.
const (
	CandidateLowestPayment   = "lowest payment"
	CandidateBalanced        = "balanced"
	CandidateMinimalDown     = "minimal down"
	CandidateLowestTotalCost = "lowest total cost"
)

// DealStructureCandidate is one named financing structure derived from a
// principal amount and a borrower profile. Candidates are frozen once scored;
// ranking reorders them without modification.
type DealStructureCandidate struct {
	Name                 string
	RecommendationReason string
	Instrument           valueobject.InstrumentType
	TermMonths           int
	RateBps              int
	DownPayment          decimal.Decimal
	DownPaymentPercent   decimal.Decimal
	MonthlyPayment       decimal.Decimal
	TotalInterest        decimal.Decimal
	ResidualValue        decimal.Decimal
	ResidualValuePercent decimal.Decimal
	MatchScore           float64
}
