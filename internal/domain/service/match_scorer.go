package service

import (
	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// MatchScorer – domain service scoring structure/profile fit
// ---------------------------------------------------------------------------

// MatchScorer assigns a 0-100 suitability score to a candidate structure for
// a borrower profile. Scoring is pure and deterministic: identical inputs
// always produce an identical score.
type MatchScorer struct{}

// NewMatchScorer returns a new scorer instance.
func NewMatchScorer() *MatchScorer {
	return &MatchScorer{}
}

const baseScore = 70.0

// Score evaluates one candidate against the profile and weighted matching
// parameters.
//
// Components:
//   - budget fit: payment/budget ratio tiers (+10 / +5 / -5 / -10)
//   - term preference: ±(10|5) scaled by the parameter weight
//   - down payment preference: same pattern
//   - instrument match: +5 flat when the candidate's instrument equals the
//     requested one
//
// The result is clamped to [0, 100].
func (s *MatchScorer) Score(
	candidate model.DealStructureCandidate,
	profile model.FinancialProfile,
	params []model.MatchingParameter,
	requested valueobject.InstrumentType,
) float64 {
	score := baseScore

	score += budgetAdjustment(candidate.MonthlyPayment, profile.MonthlyBudget)

	for _, p := range params {
		weight := float64(p.Weight) / 100.0

		switch p.Kind {
		case model.MatchingTermPreference:
			pref, err := valueobject.NewTermPreference(p.Value)
			if err != nil {
				continue
			}
			if pref.Matches(candidate.TermMonths) {
				score += 10 * weight
			} else {
				score -= 5 * weight
			}

		case model.MatchingDownPaymentPreference:
			pref, err := valueobject.NewDownPaymentPreference(p.Value)
			if err != nil {
				continue
			}
			if pref.Matches(candidate.DownPaymentPercent) {
				score += 10 * weight
			} else {
				score -= 5 * weight
			}
		}
	}

	if !requested.IsZero() && candidate.Instrument.Equal(requested) {
		score += 5
	}

	return clampScore(score)
}

// budgetAdjustment applies the payment-to-budget ratio tiers. A zero or
// missing budget contributes nothing.
func budgetAdjustment(payment, budget decimal.Decimal) float64 {
	if budget.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	ratio := payment.InexactFloat64() / budget.InexactFloat64()
	switch {
	case ratio <= 0.8:
		return 10
	case ratio <= 1.0:
		return 5
	case ratio <= 1.2:
		return -5
	default:
		return -10
	}
}

func clampScore(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
