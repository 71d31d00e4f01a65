package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/service"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

func newSynthesizer() *service.StructureSynthesizer {
	return service.NewStructureSynthesizer(service.NewRateEngine(), service.NewMatchScorer())
}

func TestStructureSynthesizer_SynthesizeAndRank(t *testing.T) {
	params := model.LoanParameters{
		Principal:     decimal.NewFromInt(100_000),
		AnnualRateBps: 599,
		Instrument:    valueobject.InstrumentLoan,
	}
	profile := model.FinancialProfile{
		MaxDownPayment:      decimal.NewFromInt(25_000),
		MonthlyBudget:       decimal.NewFromInt(2_000),
		PreferredTermMonths: 60,
		CreditScore:         720,
	}

	t.Run("produces the four named candidates and ends ranked", func(t *testing.T) {
		result, err := newSynthesizer().SynthesizeAndRank(params, profile, nil, nil)

		require.NoError(t, err)
		assert.True(t, result.Status.Equal(valueobject.SynthesisStatusRanked))
		require.Len(t, result.Candidates, 4)

		byName := make(map[string]model.DealStructureCandidate, 4)
		for _, c := range result.Candidates {
			byName[c.Name] = c
		}

		lowestPayment := byName[model.CandidateLowestPayment]
		assert.Equal(t, 84, lowestPayment.TermMonths)
		assert.True(t, decimal.NewFromInt(25_000).Equal(lowestPayment.DownPayment))

		balanced := byName[model.CandidateBalanced]
		assert.Equal(t, 60, balanced.TermMonths)
		assert.True(t, decimal.NewFromInt(15_000).Equal(balanced.DownPayment))

		minimalDown := byName[model.CandidateMinimalDown]
		assert.Equal(t, 60, minimalDown.TermMonths)
		assert.True(t, decimal.NewFromInt(5_000).Equal(minimalDown.DownPayment))

		lowestCost := byName[model.CandidateLowestTotalCost]
		assert.Equal(t, 36, lowestCost.TermMonths)
		assert.True(t, decimal.NewFromInt(25_000).Equal(lowestCost.DownPayment))
	})

	t.Run("ranking is descending by score", func(t *testing.T) {
		result, err := newSynthesizer().SynthesizeAndRank(params, profile, nil, nil)

		require.NoError(t, err)
		for i := 1; i < len(result.Candidates); i++ {
			assert.GreaterOrEqual(t,
				result.Candidates[i-1].MatchScore, result.Candidates[i].MatchScore,
			)
		}
	})

	t.Run("the lowest payment candidate really pays the least per month", func(t *testing.T) {
		result, err := newSynthesizer().SynthesizeAndRank(params, profile, nil, nil)

		require.NoError(t, err)
		var lowest model.DealStructureCandidate
		for _, c := range result.Candidates {
			if c.Name == model.CandidateLowestPayment {
				lowest = c
			}
		}
		for _, c := range result.Candidates {
			assert.True(t, lowest.MonthlyPayment.LessThanOrEqual(c.MonthlyPayment),
				"candidate %q pays less than the lowest payment structure", c.Name,
			)
		}
	})

	t.Run("the lowest total cost candidate really pays the least interest", func(t *testing.T) {
		result, err := newSynthesizer().SynthesizeAndRank(params, profile, nil, nil)

		require.NoError(t, err)
		var cheapest model.DealStructureCandidate
		for _, c := range result.Candidates {
			if c.Name == model.CandidateLowestTotalCost {
				cheapest = c
			}
		}
		for _, c := range result.Candidates {
			assert.True(t, cheapest.TotalInterest.LessThanOrEqual(c.TotalInterest),
				"candidate %q pays less interest than the lowest total cost structure", c.Name,
			)
		}
	})

	t.Run("an empty profile defaults the maximum down payment to 20 percent", func(t *testing.T) {
		result, err := newSynthesizer().SynthesizeAndRank(params, model.FinancialProfile{}, nil, nil)

		require.NoError(t, err)
		for _, c := range result.Candidates {
			if c.Name == model.CandidateLowestPayment {
				assert.True(t, decimal.NewFromInt(20_000).Equal(c.DownPayment))
			}
			if c.Name == model.CandidateMinimalDown {
				assert.Equal(t, 60, c.TermMonths, "unstated preferred term defaults to 60")
			}
		}
	})

	t.Run("a catalogue prices candidates with each structure's best rate", func(t *testing.T) {
		catalogue := []model.LenderRateProfile{testProfile()}
		result, err := newSynthesizer().SynthesizeAndRank(params, profile, nil, catalogue)

		require.NoError(t, err)
		for _, c := range result.Candidates {
			assert.NotZero(t, c.RateBps)
			assert.NotEqual(t, params.AnnualRateBps, c.RateBps,
				"candidate %q should carry a resolved catalogue rate", c.Name,
			)
		}
	})

	t.Run("every candidate carries a recommendation reason", func(t *testing.T) {
		result, err := newSynthesizer().SynthesizeAndRank(params, profile, nil, nil)

		require.NoError(t, err)
		for _, c := range result.Candidates {
			assert.NotEmpty(t, c.RecommendationReason)
		}
	})
}

func TestStructureSynthesizer_TightBudgetStillReturnsAllCandidates(t *testing.T) {
	params := model.LoanParameters{
		Principal:     decimal.NewFromInt(100_000),
		AnnualRateBps: 599,
		Instrument:    valueobject.InstrumentLoan,
	}
	tight := model.FinancialProfile{MonthlyBudget: decimal.NewFromInt(50)}
	roomy := model.FinancialProfile{MonthlyBudget: decimal.NewFromInt(50_000)}

	synth := newSynthesizer()

	tightResult, err := synth.SynthesizeAndRank(params, tight, nil, nil)
	require.NoError(t, err)
	roomyResult, err := synth.SynthesizeAndRank(params, roomy, nil, nil)
	require.NoError(t, err)

	require.Len(t, tightResult.Candidates, 4)

	roomyScores := make(map[string]float64, 4)
	for _, c := range roomyResult.Candidates {
		roomyScores[c.Name] = c.MatchScore
	}
	for _, c := range tightResult.Candidates {
		assert.Less(t, c.MatchScore, roomyScores[c.Name],
			"candidate %q should score lower under a constrained budget", c.Name,
		)
	}
}
