package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/service"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

func testCandidate() model.DealStructureCandidate {
	return model.DealStructureCandidate{
		Name:               model.CandidateBalanced,
		Instrument:         valueobject.InstrumentLoan,
		TermMonths:         60,
		DownPaymentPercent: decimal.NewFromInt(15),
		MonthlyPayment:     decimal.NewFromInt(1600),
	}
}

func TestMatchScorer_BudgetTiers(t *testing.T) {
	scorer := service.NewMatchScorer()
	candidate := testCandidate()

	tests := []struct {
		name   string
		budget decimal.Decimal
		want   float64
	}{
		{"well under budget", decimal.NewFromInt(2000), 85},    // ratio 0.8: 70 + 10 + 5 instrument
		{"at budget", decimal.NewFromInt(1600), 80},            // ratio 1.0: 70 + 5 + 5
		{"slightly over budget", decimal.NewFromInt(1400), 70}, // ratio ~1.14: 70 - 5 + 5
		{"far over budget", decimal.NewFromInt(1000), 65},      // ratio 1.6: 70 - 10 + 5
		{"no budget stated", decimal.Zero, 75},                 // 70 + 5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(candidate, model.FinancialProfile{MonthlyBudget: tt.budget},
				nil, valueobject.InstrumentLoan)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestMatchScorer_WeightedPreferences(t *testing.T) {
	scorer := service.NewMatchScorer()
	candidate := testCandidate()

	t.Run("matching term preference awards the weighted bonus", func(t *testing.T) {
		params := []model.MatchingParameter{
			{Kind: model.MatchingTermPreference, Value: "medium", Weight: 80},
		}
		got := scorer.Score(candidate, model.FinancialProfile{}, params, valueobject.InstrumentLoan)
		assert.InDelta(t, 83, got, 0.001) // 70 + 10*0.8 + 5
	})

	t.Run("missed term preference applies the weighted penalty", func(t *testing.T) {
		params := []model.MatchingParameter{
			{Kind: model.MatchingTermPreference, Value: "short", Weight: 80},
		}
		got := scorer.Score(candidate, model.FinancialProfile{}, params, valueobject.InstrumentLoan)
		assert.InDelta(t, 71, got, 0.001) // 70 - 5*0.8 + 5
	})

	t.Run("down payment preference follows the same pattern", func(t *testing.T) {
		params := []model.MatchingParameter{
			{Kind: model.MatchingDownPaymentPreference, Value: "standard", Weight: 100},
		}
		got := scorer.Score(candidate, model.FinancialProfile{}, params, valueobject.InstrumentLoan)
		assert.InDelta(t, 85, got, 0.001) // 70 + 10 + 5
	})

	t.Run("unrecognised preference values are skipped", func(t *testing.T) {
		params := []model.MatchingParameter{
			{Kind: model.MatchingTermPreference, Value: "whenever", Weight: 100},
		}
		got := scorer.Score(candidate, model.FinancialProfile{}, params, valueobject.InstrumentLoan)
		assert.InDelta(t, 75, got, 0.001)
	})
}

func TestMatchScorer_InstrumentBonus(t *testing.T) {
	scorer := service.NewMatchScorer()
	candidate := testCandidate()

	match := scorer.Score(candidate, model.FinancialProfile{}, nil, valueobject.InstrumentLoan)
	miss := scorer.Score(candidate, model.FinancialProfile{}, nil, valueobject.InstrumentLease)

	assert.InDelta(t, 5, match-miss, 0.001)
}

func TestMatchScorer_ScoreBounds(t *testing.T) {
	scorer := service.NewMatchScorer()
	candidate := testCandidate()

	// Stack every bonus: tight under-budget ratio plus full-weight matches.
	params := []model.MatchingParameter{
		{Kind: model.MatchingTermPreference, Value: "medium", Weight: 100},
		{Kind: model.MatchingDownPaymentPreference, Value: "standard", Weight: 100},
		{Kind: model.MatchingTermPreference, Value: "medium", Weight: 100},
		{Kind: model.MatchingDownPaymentPreference, Value: "standard", Weight: 100},
	}
	high := scorer.Score(candidate, model.FinancialProfile{MonthlyBudget: decimal.NewFromInt(100_000)},
		params, valueobject.InstrumentLoan)
	assert.LessOrEqual(t, high, 100.0)

	// Stack every penalty the same way.
	miss := []model.MatchingParameter{
		{Kind: model.MatchingTermPreference, Value: "short", Weight: 100},
		{Kind: model.MatchingDownPaymentPreference, Value: "substantial", Weight: 100},
	}
	low := scorer.Score(candidate, model.FinancialProfile{MonthlyBudget: decimal.NewFromInt(1)},
		miss, valueobject.InstrumentLease)
	assert.GreaterOrEqual(t, low, 0.0)
}

func TestMatchScorer_Deterministic(t *testing.T) {
	scorer := service.NewMatchScorer()
	candidate := testCandidate()
	profile := model.FinancialProfile{MonthlyBudget: decimal.NewFromInt(1700)}
	params := []model.MatchingParameter{
		{Kind: model.MatchingTermPreference, Value: "medium", Weight: 60},
		{Kind: model.MatchingDownPaymentPreference, Value: "minimal", Weight: 40},
	}

	first := scorer.Score(candidate, profile, params, valueobject.InstrumentLoan)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, scorer.Score(candidate, profile, params, valueobject.InstrumentLoan))
	}
}
