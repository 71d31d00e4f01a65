package port

import (
	"context"
	"errors"

	"github.com/dealdesk/financing-service/internal/domain/event"
	"github.com/dealdesk/financing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ErrProfileNotFound is returned by repositories when no rate profile
// matches the lookup. Callers use it to tell an absent profile apart from a
// storage failure.
var ErrProfileNotFound = errors.New("rate profile not found")

// LenderRateProfileRepository persists and retrieves lender rate policies.
type LenderRateProfileRepository interface {
	Save(ctx context.Context, profile model.LenderRateProfile) error
	FindByID(ctx context.Context, tenantID, id string) (model.LenderRateProfile, error)
	List(ctx context.Context, tenantID string) ([]model.LenderRateProfile, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
