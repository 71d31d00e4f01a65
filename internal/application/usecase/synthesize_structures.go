package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/internal/application/dto"
	"github.com/dealdesk/financing-service/internal/domain/event"
	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/port"
	"github.com/dealdesk/financing-service/internal/domain/service"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

// SynthesizeStructuresUseCase runs a structure synthesis over one principal
// amount and returns the four ranked candidates.
type SynthesizeStructuresUseCase struct {
	profileRepo port.LenderRateProfileRepository
	publisher   port.EventPublisher
	synthesizer *service.StructureSynthesizer
}

// NewSynthesizeStructuresUseCase wires dependencies.
func NewSynthesizeStructuresUseCase(
	profileRepo port.LenderRateProfileRepository,
	publisher port.EventPublisher,
	synthesizer *service.StructureSynthesizer,
) *SynthesizeStructuresUseCase {
	return &SynthesizeStructuresUseCase{
		profileRepo: profileRepo,
		publisher:   publisher,
		synthesizer: synthesizer,
	}
}

// Execute validates the request, optionally loads the tenant's lender
// catalogue, runs the synthesizer, and announces the ranked result.
func (uc *SynthesizeStructuresUseCase) Execute(
	ctx context.Context,
	req dto.SynthesizeStructuresRequest,
) (dto.SynthesizeStructuresResponse, error) {
	now := time.Now().UTC()

	if req.Principal.LessThanOrEqual(decimal.Zero) {
		return dto.SynthesizeStructuresResponse{}, model.ErrNonPositivePrincipal
	}
	if req.AnnualRateBps < 0 {
		return dto.SynthesizeStructuresResponse{}, model.ErrNegativeRate
	}

	instrument := valueobject.InstrumentLoan
	if req.Instrument != "" {
		var err error
		instrument, err = valueobject.NewInstrumentType(req.Instrument)
		if err != nil {
			return dto.SynthesizeStructuresResponse{}, fmt.Errorf("build parameters: %w", err)
		}
	}

	var catalogue []model.LenderRateProfile
	if req.UseCatalogue {
		var err error
		catalogue, err = uc.profileRepo.List(ctx, req.TenantID)
		if err != nil {
			return dto.SynthesizeStructuresResponse{}, fmt.Errorf("list catalogue: %w", err)
		}
	}

	params := model.LoanParameters{
		Principal:       req.Principal,
		ResidualPercent: req.ResidualPercent,
		AnnualRateBps:   req.AnnualRateBps,
		Instrument:      instrument,
	}
	profile := model.FinancialProfile{
		MaxDownPayment:         req.Profile.MaxDownPayment,
		MonthlyBudget:          req.Profile.MonthlyBudget,
		CashOnHand:             req.Profile.CashOnHand,
		AnnualRevenue:          req.Profile.AnnualRevenue,
		CollateralValue:        req.Profile.CollateralValue,
		PreferredTermMonths:    req.Profile.PreferredTermMonths,
		CreditScore:            req.Profile.CreditScore,
		OperatingHistoryMonths: req.Profile.OperatingHistoryMonths,
	}
	matching := make([]model.MatchingParameter, 0, len(req.Matching))
	for _, m := range req.Matching {
		matching = append(matching, model.MatchingParameter{
			Kind:   m.Kind,
			Value:  m.Value,
			Weight: m.Weight,
		})
	}

	result, err := uc.synthesizer.SynthesizeAndRank(params, profile, matching, catalogue)
	if err != nil {
		return dto.SynthesizeStructuresResponse{}, fmt.Errorf("synthesize structures: %w", err)
	}

	ranked := make([]event.RankedCandidate, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		ranked = append(ranked, event.RankedCandidate{
			Name:           c.Name,
			MonthlyPayment: c.MonthlyPayment,
			MatchScore:     c.MatchScore,
		})
	}
	structuresRanked := event.NewStructuresRanked(
		uuid.New().String(), req.TenantID, req.Principal, ranked, now,
	)
	if err := uc.publisher.Publish(ctx, structuresRanked); err != nil {
		return dto.SynthesizeStructuresResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toSynthesisResponse(req.TenantID, result), nil
}

func toSynthesisResponse(tenantID string, result service.SynthesisResult) dto.SynthesizeStructuresResponse {
	candidates := make([]dto.CandidateResponse, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		candidates = append(candidates, dto.CandidateResponse{
			Name:                 c.Name,
			RecommendationReason: c.RecommendationReason,
			Instrument:           c.Instrument.String(),
			TermMonths:           c.TermMonths,
			RateBps:              c.RateBps,
			DownPayment:          c.DownPayment,
			DownPaymentPercent:   c.DownPaymentPercent,
			MonthlyPayment:       c.MonthlyPayment,
			TotalInterest:        c.TotalInterest,
			ResidualValue:        c.ResidualValue,
			ResidualValuePercent: c.ResidualValuePercent,
			MatchScore:           c.MatchScore,
		})
	}
	return dto.SynthesizeStructuresResponse{
		TenantID:   tenantID,
		Status:     result.Status.String(),
		Candidates: candidates,
	}
}
