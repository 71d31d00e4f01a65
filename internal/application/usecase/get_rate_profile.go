package usecase

import (
	"context"
	"fmt"

	"github.com/dealdesk/financing-service/internal/application/dto"
	"github.com/dealdesk/financing-service/internal/domain/port"
)

// GetRateProfileUseCase retrieves a lender rate profile by ID.
type GetRateProfileUseCase struct {
	profileRepo port.LenderRateProfileRepository
}

// NewGetRateProfileUseCase wires dependencies.
func NewGetRateProfileUseCase(profileRepo port.LenderRateProfileRepository) *GetRateProfileUseCase {
	return &GetRateProfileUseCase{profileRepo: profileRepo}
}

// Execute returns a rate profile response for the given ID.
func (uc *GetRateProfileUseCase) Execute(
	ctx context.Context,
	req dto.GetRateProfileRequest,
) (dto.RateProfileResponse, error) {
	profile, err := uc.profileRepo.FindByID(ctx, req.TenantID, req.ProfileID)
	if err != nil {
		return dto.RateProfileResponse{}, fmt.Errorf("find profile: %w", err)
	}
	return toRateProfileResponse(profile), nil
}

// ListRateProfilesUseCase retrieves a tenant's full lender catalogue.
type ListRateProfilesUseCase struct {
	profileRepo port.LenderRateProfileRepository
}

// NewListRateProfilesUseCase wires dependencies.
func NewListRateProfilesUseCase(profileRepo port.LenderRateProfileRepository) *ListRateProfilesUseCase {
	return &ListRateProfilesUseCase{profileRepo: profileRepo}
}

// Execute returns every rate profile registered for the tenant.
func (uc *ListRateProfilesUseCase) Execute(
	ctx context.Context,
	req dto.ListRateProfilesRequest,
) (dto.ListRateProfilesResponse, error) {
	profiles, err := uc.profileRepo.List(ctx, req.TenantID)
	if err != nil {
		return dto.ListRateProfilesResponse{}, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]dto.RateProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toRateProfileResponse(p))
	}
	return dto.ListRateProfilesResponse{TenantID: req.TenantID, Profiles: out}, nil
}
