package service

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// StructureSynthesizer – domain service generating ranked deal structures
// ---------------------------------------------------------------------------

// StructureSynthesizer builds a fixed set of four named candidate structures
// from one principal amount and ranks them by match score. Each run walks the
// IDLE -> GENERATING -> RANKED lifecycle; the synthesizer itself holds no
// state between runs, so concurrent calls never interfere.
type StructureSynthesizer struct {
	rateEngine *RateEngine
	scorer     *MatchScorer
}

// NewStructureSynthesizer returns a synthesizer wired to its collaborating
// services.
func NewStructureSynthesizer(rateEngine *RateEngine, scorer *MatchScorer) *StructureSynthesizer {
	return &StructureSynthesizer{
		rateEngine: rateEngine,
		scorer:     scorer,
	}
}

// SynthesisResult is the outcome of one synthesis run. Candidates are sorted
// descending by match score; ties keep generation order. All four candidates
// are always present, never filtered.
type SynthesisResult struct {
	Status     valueobject.SynthesisStatus
	Candidates []model.DealStructureCandidate
}

// candidateBlueprint fixes the parameter strategy of one named structure
// before payments are computed.
type candidateBlueprint struct {
	name        string
	reason      string
	termMonths  int
	downPayment decimal.Decimal
}

// SynthesizeAndRank derives four candidate structures from the loan
// parameters and borrower profile, prices each one, scores it, and returns
// the ranked set.
//
// Strategies:
//
//	lowest payment    – term 84, maximum affordable down payment
//	balanced          – term 60, 15% down capped by the profile's maximum
//	minimal down      – 5% down, preferred term (or 60 when unstated)
//	lowest total cost – term 36, maximum affordable down payment
//
// When a lender catalogue is supplied the rate of each candidate is the best
// effective rate any lender offers for that candidate's term and down
// payment; otherwise the caller-supplied rate is used as-is.
func (s *StructureSynthesizer) SynthesizeAndRank(
	params model.LoanParameters,
	profile model.FinancialProfile,
	matching []model.MatchingParameter,
	catalogue []model.LenderRateProfile,
) (SynthesisResult, error) {
	status := valueobject.SynthesisStatusIdle

	status, err := advance(status, valueobject.SynthesisStatusGenerating)
	if err != nil {
		return SynthesisResult{}, err
	}

	maxDown := maxDownPayment(params.Principal, profile)
	preferredTerm := profile.PreferredTermMonths
	if preferredTerm <= 0 {
		preferredTerm = 60
	}

	blueprints := []candidateBlueprint{
		{
			name:        model.CandidateLowestPayment,
			reason:      "longest term with maximum down payment minimizes the monthly obligation",
			termMonths:  84,
			downPayment: maxDown,
		},
		{
			name:        model.CandidateBalanced,
			reason:      "mid-range term with a standard down payment balances monthly cost against total interest",
			termMonths:  60,
			downPayment: decimal.Min(percentOf(params.Principal, 15), maxDown),
		},
		{
			name:        model.CandidateMinimalDown,
			reason:      "smallest cash outlay up front at the preferred term",
			termMonths:  preferredTerm,
			downPayment: percentOf(params.Principal, 5),
		},
		{
			name:        model.CandidateLowestTotalCost,
			reason:      "shortest term with maximum down payment minimizes interest paid over the life of the deal",
			termMonths:  36,
			downPayment: maxDown,
		},
	}

	tier := valueobject.TierForScore(profile.CreditScore)
	candidates := make([]model.DealStructureCandidate, 0, len(blueprints))

	for _, bp := range blueprints {
		candidates = append(candidates, s.buildCandidate(bp, params, catalogue, tier))
	}

	for i := range candidates {
		candidates[i].MatchScore = s.scorer.Score(candidates[i], profile, matching, params.Instrument)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	status, err = advance(status, valueobject.SynthesisStatusRanked)
	if err != nil {
		return SynthesisResult{}, err
	}

	return SynthesisResult{Status: status, Candidates: candidates}, nil
}

// buildCandidate prices one blueprint into a full candidate structure.
func (s *StructureSynthesizer) buildCandidate(
	bp candidateBlueprint,
	params model.LoanParameters,
	catalogue []model.LenderRateProfile,
	creditTier string,
) model.DealStructureCandidate {
	downPercent := decimal.Zero
	if params.Principal.IsPositive() {
		downPercent = bp.downPayment.Div(params.Principal).Mul(decimal.NewFromInt(100)).Round(2)
	}

	rateBps := params.AnnualRateBps
	if len(catalogue) > 0 {
		rateBps = bestCatalogueRate(s.rateEngine, catalogue, model.RateRequest{
			TermMonths:         bp.termMonths,
			CreditTier:         creditTier,
			DownPaymentPercent: downPercent,
		})
	}

	residualValue := params.Principal.Mul(params.ResidualPercent).Div(decimal.NewFromInt(100)).Round(2)
	financed := params.Principal.Sub(bp.downPayment).Sub(residualValue)

	payment := model.ComputePayment(financed, bp.termMonths, rateBps)
	schedule := model.GenerateSchedule(financed, bp.termMonths, rateBps, payment)

	return model.DealStructureCandidate{
		Name:                 bp.name,
		RecommendationReason: bp.reason,
		Instrument:           params.Instrument,
		TermMonths:           bp.termMonths,
		RateBps:              rateBps,
		DownPayment:          bp.downPayment.Round(2),
		DownPaymentPercent:   downPercent,
		MonthlyPayment:       payment,
		TotalInterest:        schedule.TotalInterest,
		ResidualValue:        residualValue,
		ResidualValuePercent: params.ResidualPercent,
	}
}

// maxDownPayment resolves the largest down payment the profile supports.
// An unstated maximum defaults to 20% of principal; the result never exceeds
// the principal itself.
func maxDownPayment(principal decimal.Decimal, profile model.FinancialProfile) decimal.Decimal {
	maxDown := profile.MaxDownPayment
	if !maxDown.IsPositive() {
		maxDown = percentOf(principal, 20)
	}
	return decimal.Min(maxDown, principal)
}

// percentOf returns pct percent of amount rounded to cents.
func percentOf(amount decimal.Decimal, pct int64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100)).Round(2)
}

// bestCatalogueRate returns the lowest effective rate any lender in the
// catalogue resolves for the request.
func bestCatalogueRate(engine *RateEngine, catalogue []model.LenderRateProfile, req model.RateRequest) int {
	best := engine.ResolveEffectiveRate(catalogue[0], req)
	for _, profile := range catalogue[1:] {
		if rate := engine.ResolveEffectiveRate(profile, req); rate < best {
			best = rate
		}
	}
	return best
}

// advance moves the run status forward, rejecting illegal transitions.
func advance(current, next valueobject.SynthesisStatus) (valueobject.SynthesisStatus, error) {
	if !current.CanTransitionTo(next) {
		return current, fmt.Errorf("%w: %s -> %s", valueobject.ErrInvalidStatusTransition, current, next)
	}
	return next, nil
}
