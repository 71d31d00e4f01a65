package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// RateEngine – domain service resolving lender rate policies
// ---------------------------------------------------------------------------

// RateEngine resolves a lender's base rate plus additive adjustment tables
// into a single effective rate for a borrower request.
type RateEngine struct{}

// NewRateEngine returns a new engine instance.
func NewRateEngine() *RateEngine {
	return &RateEngine{}
}

// ResolveEffectiveRate computes, in basis points:
//
//	effective = base + termAdj + creditTierAdj + downPaymentAdj
//
// Numeric tables (term, down payment percent) resolve to the bucket whose
// key is nearest the requested value; when two keys are equally close the
// lower key wins, so resolution is deterministic regardless of map
// iteration order. Credit tier is matched by exact label; an unknown label
// contributes no adjustment. The result is not clamped: negative or very
// high rates are legal policy extremes.
func (e *RateEngine) ResolveEffectiveRate(profile model.LenderRateProfile, req model.RateRequest) int {
	rate := profile.BaseRateBps

	rate += nearestBucket(profile.TermAdjustments, decimal.NewFromInt(int64(req.TermMonths)))
	rate += nearestBucket(profile.DownPaymentAdjustments, req.DownPaymentPercent)

	if adj, ok := profile.CreditTierAdjustments[req.CreditTier]; ok {
		rate += adj
	}

	return rate
}

// CompareLenders resolves every lender in the catalogue against the request,
// recomputes the monthly payment at each effective rate, and returns quotes
// sorted ascending by payment. Equal payments keep catalogue order.
func (e *RateEngine) CompareLenders(
	catalogue []model.LenderRateProfile,
	req model.RateRequest,
	financedAmount decimal.Decimal,
) []model.LenderQuote {
	quotes := make([]model.LenderQuote, 0, len(catalogue))

	for _, profile := range catalogue {
		rateBps := e.ResolveEffectiveRate(profile, req)
		payment := model.ComputePayment(financedAmount, req.TermMonths, rateBps)
		schedule := model.GenerateSchedule(financedAmount, req.TermMonths, rateBps, payment)

		quotes = append(quotes, model.LenderQuote{
			LenderID:         profile.ID,
			LenderName:       profile.Name,
			EffectiveRateBps: rateBps,
			MonthlyPayment:   payment,
			TotalInterest:    schedule.TotalInterest,
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].MonthlyPayment.LessThan(quotes[j].MonthlyPayment)
	})

	return quotes
}

// nearestBucket returns the adjustment whose key is numerically nearest the
// target; ties prefer the lower key.
func nearestBucket(table map[int]int, target decimal.Decimal) int {
	found := false
	var bestKey int
	var bestDiff decimal.Decimal

	for key := range table {
		diff := decimal.NewFromInt(int64(key)).Sub(target).Abs()
		switch {
		case !found, diff.LessThan(bestDiff):
			found = true
			bestKey = key
			bestDiff = diff
		case diff.Equal(bestDiff) && key < bestKey:
			bestKey = key
		}
	}

	if !found {
		return 0
	}
	return table[bestKey]
}
