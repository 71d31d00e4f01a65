package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dealdesk/financing-service/internal/domain/event"
)

// ---------------------------------------------------------------------------
// FinancingQuote aggregate root
// ---------------------------------------------------------------------------

// FinancingQuote ties a set of loan parameters to the payment and schedule
// computed from them. The aggregate is immutable; it exists for one
// request/response cycle and is never persisted.
type FinancingQuote struct {
	id           string
	tenantID     string
	parameters   LoanParameters
	payment      decimal.Decimal
	schedule     PaymentSchedule
	createdAt    time.Time
	domainEvents []event.DomainEvent
}

// NewFinancingQuote computes a quote for the given parameters and emits
// QuoteComputed. Degenerate parameters (non-positive financed amount) yield
// a quote with a zero payment and an empty schedule, never an error.
func NewFinancingQuote(tenantID string, params LoanParameters, now time.Time) FinancingQuote {
	id := uuid.New().String()
	financed := params.FinancedAmount()
	payment := ComputePayment(financed, params.TermMonths, params.AnnualRateBps)
	schedule := GenerateSchedule(financed, params.TermMonths, params.AnnualRateBps, payment)

	quote := FinancingQuote{
		id:         id,
		tenantID:   tenantID,
		parameters: params,
		payment:    payment,
		schedule:   schedule,
		createdAt:  now,
	}

	quote.domainEvents = append(quote.domainEvents, event.NewQuoteComputed(
		id, tenantID, financed, payment, schedule.TotalInterest,
		params.AnnualRateBps, params.TermMonths, now,
	))

	return quote
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (q FinancingQuote) ID() string                      { return q.id }
func (q FinancingQuote) TenantID() string                { return q.tenantID }
func (q FinancingQuote) Parameters() LoanParameters      { return q.parameters }
func (q FinancingQuote) Payment() decimal.Decimal        { return q.payment }
func (q FinancingQuote) FinancedAmount() decimal.Decimal { return q.parameters.FinancedAmount() }
func (q FinancingQuote) CreatedAt() time.Time            { return q.createdAt }
func (q FinancingQuote) DomainEvents() []event.DomainEvent {
	return q.domainEvents
}

// Schedule returns a copy of the payment schedule with its periods slice
// detached from the aggregate.
func (q FinancingQuote) Schedule() PaymentSchedule {
	out := q.schedule
	if q.schedule.Periods != nil {
		out.Periods = make([]PaymentPeriod, len(q.schedule.Periods))
		copy(out.Periods, q.schedule.Periods)
	}
	return out
}

// ClearEvents returns a copy with an empty event list.
func (q FinancingQuote) ClearEvents() FinancingQuote {
	next := q
	next.domainEvents = nil
	return next
}
