package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dealdesk/financing-service/internal/application/dto"
	"github.com/dealdesk/financing-service/internal/domain/event"
	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/port"
)

// UpsertRateProfileUseCase creates or replaces a lender's rate policy in the
// tenant's catalogue.
type UpsertRateProfileUseCase struct {
	profileRepo port.LenderRateProfileRepository
	publisher   port.EventPublisher
}

// NewUpsertRateProfileUseCase wires dependencies.
func NewUpsertRateProfileUseCase(
	profileRepo port.LenderRateProfileRepository,
	publisher port.EventPublisher,
) *UpsertRateProfileUseCase {
	return &UpsertRateProfileUseCase{
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

// Execute validates, persists, and announces the rate profile. An existing
// profile keeps its creation timestamp.
func (uc *UpsertRateProfileUseCase) Execute(
	ctx context.Context,
	req dto.UpsertRateProfileRequest,
) (dto.RateProfileResponse, error) {
	now := time.Now().UTC()

	profile := model.LenderRateProfile{
		ID:                     req.ProfileID,
		TenantID:               req.TenantID,
		Name:                   req.Name,
		BaseRateBps:            req.BaseRateBps,
		TermAdjustments:        req.TermAdjustments,
		CreditTierAdjustments:  req.CreditTierAdjustments,
		DownPaymentAdjustments: req.DownPaymentAdjustments,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	} else {
		existing, err := uc.profileRepo.FindByID(ctx, req.TenantID, profile.ID)
		switch {
		case err == nil:
			profile.CreatedAt = existing.CreatedAt
		case !errors.Is(err, port.ErrProfileNotFound):
			return dto.RateProfileResponse{}, fmt.Errorf("load existing profile: %w", err)
		}
	}

	if err := profile.Validate(); err != nil {
		return dto.RateProfileResponse{}, fmt.Errorf("validate profile: %w", err)
	}

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return dto.RateProfileResponse{}, fmt.Errorf("save profile: %w", err)
	}

	upserted := event.NewRateProfileUpserted(
		profile.ID, profile.TenantID, profile.Name, profile.BaseRateBps, now,
	)
	if err := uc.publisher.Publish(ctx, upserted); err != nil {
		return dto.RateProfileResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toRateProfileResponse(profile), nil
}

func toRateProfileResponse(profile model.LenderRateProfile) dto.RateProfileResponse {
	return dto.RateProfileResponse{
		ID:                     profile.ID,
		TenantID:               profile.TenantID,
		Name:                   profile.Name,
		BaseRateBps:            profile.BaseRateBps,
		TermAdjustments:        profile.TermAdjustments,
		CreditTierAdjustments:  profile.CreditTierAdjustments,
		DownPaymentAdjustments: profile.DownPaymentAdjustments,
		CreatedAt:              profile.CreatedAt,
		UpdatedAt:              profile.UpdatedAt,
	}
}
