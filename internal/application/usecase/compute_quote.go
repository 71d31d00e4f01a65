package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dealdesk/financing-service/internal/application/dto"
	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/port"
	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

// ComputeQuoteUseCase computes a financing quote with its full amortization
// schedule. Quotes are request-scoped: they are returned to the caller and
// announced on the event stream, never persisted.
type ComputeQuoteUseCase struct {
	publisher port.EventPublisher
}

// NewComputeQuoteUseCase wires dependencies.
func NewComputeQuoteUseCase(publisher port.EventPublisher) *ComputeQuoteUseCase {
	return &ComputeQuoteUseCase{publisher: publisher}
}

// Execute validates the parameters, computes the quote, and publishes the
// resulting domain events.
func (uc *ComputeQuoteUseCase) Execute(
	ctx context.Context,
	req dto.ComputeQuoteRequest,
) (dto.QuoteResponse, error) {
	now := time.Now().UTC()

	params, err := parametersFromRequest(req)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("build parameters: %w", err)
	}
	if err := params.Validate(); err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("validate parameters: %w", err)
	}

	quote := model.NewFinancingQuote(req.TenantID, params, now)

	if err := uc.publisher.Publish(ctx, quote.DomainEvents()...); err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toQuoteResponse(quote), nil
}

func parametersFromRequest(req dto.ComputeQuoteRequest) (model.LoanParameters, error) {
	instrument := valueobject.InstrumentLoan
	if req.Instrument != "" {
		var err error
		instrument, err = valueobject.NewInstrumentType(req.Instrument)
		if err != nil {
			return model.LoanParameters{}, err
		}
	}

	return model.LoanParameters{
		Principal:       req.Principal,
		DownPayment:     req.DownPayment,
		ResidualPercent: req.ResidualPercent,
		AnnualRateBps:   req.AnnualRateBps,
		TermMonths:      req.TermMonths,
		Instrument:      instrument,
	}, nil
}

func toQuoteResponse(quote model.FinancingQuote) dto.QuoteResponse {
	schedule := quote.Schedule()
	params := quote.Parameters()

	periods := make([]dto.PaymentPeriodResponse, 0, len(schedule.Periods))
	for _, p := range schedule.Periods {
		periods = append(periods, dto.PaymentPeriodResponse{
			Index:               p.Index,
			Payment:             p.Payment,
			PrincipalPortion:    p.PrincipalPortion,
			InterestPortion:     p.InterestPortion,
			RemainingBalance:    p.RemainingBalance,
			CumulativePrincipal: p.CumulativePrincipal,
			CumulativeInterest:  p.CumulativeInterest,
		})
	}

	return dto.QuoteResponse{
		ID:             quote.ID(),
		TenantID:       quote.TenantID(),
		FinancedAmount: quote.FinancedAmount(),
		MonthlyPayment: quote.Payment(),
		TotalInterest:  schedule.TotalInterest,
		TotalPayments:  schedule.TotalPayments,
		ResidualValue:  params.ResidualValue(),
		AnnualRateBps:  params.AnnualRateBps,
		TermMonths:     params.TermMonths,
		Instrument:     params.Instrument.String(),
		Schedule:       periods,
		CreatedAt:      quote.CreatedAt(),
	}
}
