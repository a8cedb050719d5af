package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/model"
)

// PriceRepository provides data access methods for the price_override table.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetPriceMap returns the manual price overrides for a family group as an
// assetName -> price map, the shape the aggregation core consumes.
func (r *PriceRepository) GetPriceMap(familyGroupID string) (map[string]float64, error) {
	rows, err := r.db.Query(
		`SELECT asset_name, price FROM price_override WHERE family_group_id = ?`,
		familyGroupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_override table: %w", err)
	}
	defer rows.Close()

	prices := make(map[string]float64)
	for rows.Next() {
		var assetName string
		var price float64
		if err := rows.Scan(&assetName, &price); err != nil {
			return nil, fmt.Errorf("failed to scan price_override results: %w", err)
		}
		prices[assetName] = price
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price_override table: %w", err)
	}

	return prices, nil
}

// GetPriceOverrides returns the full override records for display.
func (r *PriceRepository) GetPriceOverrides(familyGroupID string) ([]model.PriceOverride, error) {
	query := `
		SELECT id, family_group_id, asset_name, price, updated_at
		FROM price_override
		WHERE family_group_id = ?
		ORDER BY asset_name ASC
	`

	rows, err := r.db.Query(query, familyGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_override table: %w", err)
	}
	defer rows.Close()

	overrides := []model.PriceOverride{}
	for rows.Next() {
		var p model.PriceOverride
		var updatedAtStr string
		if err := rows.Scan(&p.ID, &p.FamilyGroupID, &p.AssetName, &p.Price, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan price_override results: %w", err)
		}
		p.UpdatedAt, _ = ParseTime(updatedAtStr)
		overrides = append(overrides, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price_override table: %w", err)
	}

	return overrides, nil
}

// UpsertPrice records the latest manually quoted price for an asset,
// replacing any previous quote.
func (r *PriceRepository) UpsertPrice(ctx context.Context, p *model.PriceOverride) error {
	query := `
		INSERT INTO price_override (id, family_group_id, asset_name, price, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(family_group_id, asset_name)
		DO UPDATE SET price = excluded.price, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.FamilyGroupID, p.AssetName, p.Price,
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert price override: %w", err)
	}

	return nil
}
