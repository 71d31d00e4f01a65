package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/financing-service/internal/application/dto"
	"github.com/dealdesk/financing-service/internal/application/usecase"
	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/service"
	"github.com/dealdesk/financing-service/pkg/testutil"
)

func TestCompareLendersUseCase_Execute(t *testing.T) {
	t.Run("returns quotes ordered by monthly payment", func(t *testing.T) {
		repo := &mockRateProfileRepository{
			listFunc: func(_ context.Context, tenantID string) ([]model.LenderRateProfile, error) {
				assert.Equal(t, "tenant-001", tenantID)
				return sampleCatalogue(), nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCompareLendersUseCase(repo, publisher, service.NewRateEngine())

		req := dto.CompareLendersRequest{
			TenantID:    "tenant-001",
			Principal:   decimal.NewFromInt(100000),
			DownPayment: decimal.NewFromInt(15000),
			TermMonths:  60,
			CreditScore: 740,
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, resp.Quotes, 2)
		assert.True(t, resp.Quotes[0].MonthlyPayment.LessThanOrEqual(resp.Quotes[1].MonthlyPayment))

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "financing.lenders.compared", publisher.publishedEvents[0].EventType())
	})

	t.Run("resolves effective rates per lender", func(t *testing.T) {
		repo := &mockRateProfileRepository{
			listFunc: func(_ context.Context, _ string) ([]model.LenderRateProfile, error) {
				return sampleCatalogue(), nil
			},
		}
		uc := usecase.NewCompareLendersUseCase(repo, &mockEventPublisher{}, service.NewRateEngine())

		// PRIME borrower, exact 60-month and 15% down payment buckets for
		// First Capital: 550 + 0 - 50 + 0 = 500.
		req := dto.CompareLendersRequest{
			TenantID:    "tenant-001",
			Principal:   decimal.NewFromInt(100000),
			DownPayment: decimal.NewFromInt(15000),
			TermMonths:  60,
			CreditScore: 740,
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		for _, q := range resp.Quotes {
			if q.LenderID == testutil.TestLenderID1 {
				assert.Equal(t, 500, q.EffectiveRateBps)
			}
		}
	})

	t.Run("fails on an empty catalogue", func(t *testing.T) {
		repo := &mockRateProfileRepository{
			listFunc: func(_ context.Context, _ string) ([]model.LenderRateProfile, error) {
				return nil, nil
			},
		}
		uc := usecase.NewCompareLendersUseCase(repo, &mockEventPublisher{}, service.NewRateEngine())

		req := dto.CompareLendersRequest{
			TenantID:    "tenant-001",
			Principal:   decimal.NewFromInt(100000),
			TermMonths:  60,
			CreditScore: 700,
		}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrEmptyCatalogue)
	})

	t.Run("rejects a non-positive term", func(t *testing.T) {
		uc := usecase.NewCompareLendersUseCase(
			&mockRateProfileRepository{}, &mockEventPublisher{}, service.NewRateEngine(),
		)

		req := dto.CompareLendersRequest{
			TenantID:  "tenant-001",
			Principal: decimal.NewFromInt(100000),
		}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNonPositiveTerm)
	})

	t.Run("fails when the catalogue cannot be loaded", func(t *testing.T) {
		repo := &mockRateProfileRepository{
			listFunc: func(_ context.Context, _ string) ([]model.LenderRateProfile, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}
		uc := usecase.NewCompareLendersUseCase(repo, &mockEventPublisher{}, service.NewRateEngine())

		req := dto.CompareLendersRequest{
			TenantID:    "tenant-001",
			Principal:   decimal.NewFromInt(100000),
			TermMonths:  60,
			CreditScore: 700,
		}
		_, err := uc.Execute(context.Background(), req)

		testutil.AssertErrorContains(t, err, "list catalogue")
	})
}
