package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dealdesk/financing-service/internal/application/dto"
	"github.com/dealdesk/financing-service/internal/application/usecase"
	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/port"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

// FinancingHandler implements FinancingServiceServer on top of the
// application use cases.
type FinancingHandler struct {
	UnimplementedFinancingServiceServer

	computeQuote   *usecase.ComputeQuoteUseCase
	compareLenders *usecase.CompareLendersUseCase
	synthesize     *usecase.SynthesizeStructuresUseCase
	upsertProfile  *usecase.UpsertRateProfileUseCase
	getProfile     *usecase.GetRateProfileUseCase
	listProfiles   *usecase.ListRateProfilesUseCase
	logger         *slog.Logger
}

// NewFinancingHandler creates a new handler with all use-case dependencies.
func NewFinancingHandler(
	computeQuote *usecase.ComputeQuoteUseCase,
	compareLenders *usecase.CompareLendersUseCase,
	synthesize *usecase.SynthesizeStructuresUseCase,
	upsertProfile *usecase.UpsertRateProfileUseCase,
	getProfile *usecase.GetRateProfileUseCase,
	listProfiles *usecase.ListRateProfilesUseCase,
	logger *slog.Logger,
) *FinancingHandler {
	return &FinancingHandler{
		computeQuote:   computeQuote,
		compareLenders: compareLenders,
		synthesize:     synthesize,
		upsertProfile:  upsertProfile,
		getProfile:     getProfile,
		listProfiles:   listProfiles,
		logger:         logger,
	}
}

// ComputeQuote computes a payment and full amortization schedule.
func (h *FinancingHandler) ComputeQuote(ctx context.Context, req *ComputeQuoteRequest) (*ComputeQuoteResponse, error) {
	principal, err := parseAmount(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	downPayment, err := parseAmount(req.DownPayment, "down_payment")
	if err != nil {
		return nil, err
	}
	residual, err := parseAmount(req.ResidualPercent, "residual_percent")
	if err != nil {
		return nil, err
	}
	if err := checkInstrument(req.Instrument); err != nil {
		return nil, err
	}

	resp, err := h.computeQuote.Execute(ctx, dto.ComputeQuoteRequest{
		TenantID:        req.TenantID,
		Principal:       principal,
		DownPayment:     downPayment,
		ResidualPercent: residual,
		AnnualRateBps:   req.AnnualRateBps,
		TermMonths:      req.TermMonths,
		Instrument:      req.Instrument,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "ComputeQuote", err)
	}
	return &ComputeQuoteResponse{Quote: resp}, nil
}

// CompareLenders resolves each catalogue lender against the request.
func (h *FinancingHandler) CompareLenders(ctx context.Context, req *CompareLendersRequest) (*CompareLendersResponse, error) {
	principal, err := parseAmount(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	downPayment, err := parseAmount(req.DownPayment, "down_payment")
	if err != nil {
		return nil, err
	}
	residual, err := parseAmount(req.ResidualPercent, "residual_percent")
	if err != nil {
		return nil, err
	}

	resp, err := h.compareLenders.Execute(ctx, dto.CompareLendersRequest{
		TenantID:        req.TenantID,
		Principal:       principal,
		DownPayment:     downPayment,
		ResidualPercent: residual,
		TermMonths:      req.TermMonths,
		CreditScore:     req.CreditScore,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "CompareLenders", err)
	}
	return &CompareLendersResponse{Comparison: resp}, nil
}

// SynthesizeStructures generates and ranks candidate deal structures.
func (h *FinancingHandler) SynthesizeStructures(ctx context.Context, req *SynthesizeStructuresRequest) (*SynthesizeStructuresResponse, error) {
	principal, err := parseAmount(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	residual, err := parseAmount(req.ResidualPercent, "residual_percent")
	if err != nil {
		return nil, err
	}
	if err := checkInstrument(req.Instrument); err != nil {
		return nil, err
	}
	profile, err := parseProfile(req.Profile)
	if err != nil {
		return nil, err
	}

	matching := make([]dto.MatchingParameterRequest, 0, len(req.Matching))
	for _, m := range req.Matching {
		matching = append(matching, dto.MatchingParameterRequest{
			Kind:   m.Kind,
			Value:  m.Value,
			Weight: m.Weight,
		})
	}

	resp, err := h.synthesize.Execute(ctx, dto.SynthesizeStructuresRequest{
		TenantID:        req.TenantID,
		Principal:       principal,
		ResidualPercent: residual,
		AnnualRateBps:   req.AnnualRateBps,
		Instrument:      req.Instrument,
		Profile:         profile,
		Matching:        matching,
		UseCatalogue:    req.UseCatalogue,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "SynthesizeStructures", err)
	}
	return &SynthesizeStructuresResponse{Result: resp}, nil
}

// UpsertRateProfile creates or replaces a lender rate policy.
func (h *FinancingHandler) UpsertRateProfile(ctx context.Context, req *UpsertRateProfileRequest) (*UpsertRateProfileResponse, error) {
	resp, err := h.upsertProfile.Execute(ctx, dto.UpsertRateProfileRequest{
		TenantID:               req.TenantID,
		ProfileID:              req.ProfileID,
		Name:                   req.Name,
		BaseRateBps:            req.BaseRateBps,
		TermAdjustments:        req.TermAdjustments,
		CreditTierAdjustments:  req.CreditTierAdjustments,
		DownPaymentAdjustments: req.DownPaymentAdjustments,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "UpsertRateProfile", err)
	}
	return &UpsertRateProfileResponse{Profile: resp}, nil
}

// GetRateProfile retrieves a lender rate profile by ID.
func (h *FinancingHandler) GetRateProfile(ctx context.Context, req *GetRateProfileRequest) (*GetRateProfileResponse, error) {
	resp, err := h.getProfile.Execute(ctx, dto.GetRateProfileRequest{
		TenantID:  req.TenantID,
		ProfileID: req.ProfileID,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "GetRateProfile", err)
	}
	return &GetRateProfileResponse{Profile: resp}, nil
}

// ListRateProfiles retrieves a tenant's full lender catalogue.
func (h *FinancingHandler) ListRateProfiles(ctx context.Context, req *ListRateProfilesRequest) (*ListRateProfilesResponse, error) {
	resp, err := h.listProfiles.Execute(ctx, dto.ListRateProfilesRequest{
		TenantID: req.TenantID,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "ListRateProfiles", err)
	}
	return &ListRateProfilesResponse{Catalogue: resp}, nil
}

// ---------------------------------------------------------------------------
// boundary helpers
// ---------------------------------------------------------------------------

// parseAmount parses a wire amount. Empty strings decode to zero so optional
// fields can be omitted.
func parseAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

// checkInstrument rejects unknown instrument labels before the use case
// runs. Empty means "use the default".
func checkInstrument(s string) error {
	if s == "" {
		return nil
	}
	if _, err := valueobject.NewInstrumentType(s); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func parseProfile(p FinancialProfile) (dto.FinancialProfileRequest, error) {
	maxDown, err := parseAmount(p.MaxDownPayment, "profile.max_down_payment")
	if err != nil {
		return dto.FinancialProfileRequest{}, err
	}
	budget, err := parseAmount(p.MonthlyBudget, "profile.monthly_budget")
	if err != nil {
		return dto.FinancialProfileRequest{}, err
	}
	cash, err := parseAmount(p.CashOnHand, "profile.cash_on_hand")
	if err != nil {
		return dto.FinancialProfileRequest{}, err
	}
	revenue, err := parseAmount(p.AnnualRevenue, "profile.annual_revenue")
	if err != nil {
		return dto.FinancialProfileRequest{}, err
	}
	collateral, err := parseAmount(p.CollateralValue, "profile.collateral_value")
	if err != nil {
		return dto.FinancialProfileRequest{}, err
	}

	return dto.FinancialProfileRequest{
		MaxDownPayment:         maxDown,
		MonthlyBudget:          budget,
		CashOnHand:             cash,
		AnnualRevenue:          revenue,
		CollateralValue:        collateral,
		PreferredTermMonths:    p.PreferredTermMonths,
		CreditScore:            p.CreditScore,
		OperatingHistoryMonths: p.OperatingHistoryMonths,
	}, nil
}

func (h *FinancingHandler) toStatusError(ctx context.Context, method string, err error) error {
	h.logger.ErrorContext(ctx, "request failed", "method", method, "error", err)

	switch {
	case isValidationError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrProfileNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, usecase.ErrEmptyCatalogue):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("%s failed", method))
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		model.ErrNonPositivePrincipal,
		model.ErrNegativeRate,
		model.ErrNonPositiveTerm,
		model.ErrInvalidDownPayment,
		model.ErrInvalidResidual,
		model.ErrLenderNameRequired,
		model.ErrEmptyAdjustmentTable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
