package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dealdesk/financing-service/internal/domain/model"
	"github.com/dealdesk/financing-service/internal/domain/port"
	pkgpostgres "github.com/dealdesk/financing-service/pkg/postgres"
)

// LenderRateProfileRepo implements port.LenderRateProfileRepository.
// Adjustment tables are stored as JSONB so a lender's bucket layout can vary
// freely without schema changes.
type LenderRateProfileRepo struct {
	db pkgpostgres.Querier
}

// NewLenderRateProfileRepo creates a new PostgreSQL-backed catalogue
// repository. db is typically a *pgxpool.Pool.
func NewLenderRateProfileRepo(db pkgpostgres.Querier) *LenderRateProfileRepo {
	return &LenderRateProfileRepo{db: db}
}

// Save persists a rate profile (upsert by ID).
func (r *LenderRateProfileRepo) Save(ctx context.Context, profile model.LenderRateProfile) error {
	termAdj, err := json.Marshal(profile.TermAdjustments)
	if err != nil {
		return fmt.Errorf("marshal term adjustments: %w", err)
	}
	tierAdj, err := json.Marshal(profile.CreditTierAdjustments)
	if err != nil {
		return fmt.Errorf("marshal credit tier adjustments: %w", err)
	}
	downAdj, err := json.Marshal(profile.DownPaymentAdjustments)
	if err != nil {
		return fmt.Errorf("marshal down payment adjustments: %w", err)
	}

	query := `
		INSERT INTO lender_rate_profiles (
			id, tenant_id, name, base_rate_bps,
			term_adjustments, credit_tier_adjustments, down_payment_adjustments,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			name                     = EXCLUDED.name,
			base_rate_bps            = EXCLUDED.base_rate_bps,
			term_adjustments         = EXCLUDED.term_adjustments,
			credit_tier_adjustments  = EXCLUDED.credit_tier_adjustments,
			down_payment_adjustments = EXCLUDED.down_payment_adjustments,
			updated_at               = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		profile.ID, profile.TenantID, profile.Name, profile.BaseRateBps,
		termAdj, tierAdj, downAdj,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save rate profile: %w", err)
	}
	return nil
}

// FindByID retrieves a single rate profile.
func (r *LenderRateProfileRepo) FindByID(ctx context.Context, tenantID, id string) (model.LenderRateProfile, error) {
	query := `
		SELECT id, tenant_id, name, base_rate_bps,
		       term_adjustments, credit_tier_adjustments, down_payment_adjustments,
		       created_at, updated_at
		FROM lender_rate_profiles
		WHERE tenant_id = $1 AND id = $2
	`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LenderRateProfile{}, port.ErrProfileNotFound
	}
	return profile, err
}

// List retrieves a tenant's full catalogue ordered by lender name.
func (r *LenderRateProfileRepo) List(ctx context.Context, tenantID string) ([]model.LenderRateProfile, error) {
	query := `
		SELECT id, tenant_id, name, base_rate_bps,
		       term_adjustments, credit_tier_adjustments, down_payment_adjustments,
		       created_at, updated_at
		FROM lender_rate_profiles
		WHERE tenant_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query rate profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.LenderRateProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanProfile(s scannable) (model.LenderRateProfile, error) {
	var (
		id, tenantID, name        string
		baseRateBps               int
		termAdj, tierAdj, downAdj []byte
		createdAt, updatedAt      time.Time
	)

	err := s.Scan(
		&id, &tenantID, &name, &baseRateBps,
		&termAdj, &tierAdj, &downAdj,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.LenderRateProfile{}, fmt.Errorf("scan rate profile: %w", err)
	}

	profile := model.LenderRateProfile{
		ID:          id,
		TenantID:    tenantID,
		Name:        name,
		BaseRateBps: baseRateBps,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if err := json.Unmarshal(termAdj, &profile.TermAdjustments); err != nil {
		return model.LenderRateProfile{}, fmt.Errorf("unmarshal term adjustments: %w", err)
	}
	if err := json.Unmarshal(tierAdj, &profile.CreditTierAdjustments); err != nil {
		return model.LenderRateProfile{}, fmt.Errorf("unmarshal credit tier adjustments: %w", err)
	}
	if err := json.Unmarshal(downAdj, &profile.DownPaymentAdjustments); err != nil {
		return model.LenderRateProfile{}, fmt.Errorf("unmarshal down payment adjustments: %w", err)
	}
	return profile, nil
}
