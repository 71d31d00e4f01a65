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

// CompareLendersUseCase resolves every lender in the tenant's catalogue
// against one borrower request and returns quotes ordered by monthly payment.
type CompareLendersUseCase struct {
	profileRepo port.LenderRateProfileRepository
	publisher   port.EventPublisher
	rateEngine  *service.RateEngine
}

// NewCompareLendersUseCase wires dependencies.
func NewCompareLendersUseCase(
	profileRepo port.LenderRateProfileRepository,
	publisher port.EventPublisher,
	rateEngine *service.RateEngine,
) *CompareLendersUseCase {
	return &CompareLendersUseCase{
		profileRepo: profileRepo,
		publisher:   publisher,
		rateEngine:  rateEngine,
	}
}

// ErrEmptyCatalogue is returned when a tenant has no lender rate profiles to
// compare against.
var ErrEmptyCatalogue = fmt.Errorf("lender catalogue is empty")

// Execute loads the catalogue, resolves each lender's effective rate, and
// publishes a comparison event.
func (uc *CompareLendersUseCase) Execute(
	ctx context.Context,
	req dto.CompareLendersRequest,
) (dto.CompareLendersResponse, error) {
	now := time.Now().UTC()

	if req.TermMonths <= 0 {
		return dto.CompareLendersResponse{}, model.ErrNonPositiveTerm
	}
	if req.Principal.LessThanOrEqual(decimal.Zero) {
		return dto.CompareLendersResponse{}, model.ErrNonPositivePrincipal
	}

	catalogue, err := uc.profileRepo.List(ctx, req.TenantID)
	if err != nil {
		return dto.CompareLendersResponse{}, fmt.Errorf("list catalogue: %w", err)
	}
	if len(catalogue) == 0 {
		return dto.CompareLendersResponse{}, ErrEmptyCatalogue
	}

	params := model.LoanParameters{
		Principal:       req.Principal,
		DownPayment:     req.DownPayment,
		ResidualPercent: req.ResidualPercent,
		TermMonths:      req.TermMonths,
	}
	rateReq := model.RateRequest{
		TermMonths:         req.TermMonths,
		CreditTier:         valueobject.TierForScore(req.CreditScore),
		DownPaymentPercent: params.DownPaymentPercent(),
	}

	quotes := uc.rateEngine.CompareLenders(catalogue, rateReq, params.FinancedAmount())

	compared := event.NewLendersCompared(
		uuid.New().String(), req.TenantID,
		len(quotes), quotes[0].LenderName, quotes[0].MonthlyPayment, now,
	)
	if err := uc.publisher.Publish(ctx, compared); err != nil {
		return dto.CompareLendersResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toComparisonResponse(req.TenantID, quotes), nil
}

func toComparisonResponse(tenantID string, quotes []model.LenderQuote) dto.CompareLendersResponse {
	out := make([]dto.LenderQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.LenderQuoteResponse{
			LenderID:         q.LenderID,
			LenderName:       q.LenderName,
			EffectiveRateBps: q.EffectiveRateBps,
			MonthlyPayment:   q.MonthlyPayment,
			TotalInterest:    q.TotalInterest,
		})
	}
	return dto.CompareLendersResponse{TenantID: tenantID, Quotes: out}
}
