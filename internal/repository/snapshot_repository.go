package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/model"
)

// SnapshotRepository provides data access methods for the dashboard_snapshot
// table, the materialized daily dashboard state per family group.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshots streams snapshots for a family group within the inclusive
// date range to the callback, ordered by date ascending. The callback
// pattern keeps memory flat for large ranges.
func (r *SnapshotRepository) GetSnapshots(
	familyGroupID string,
	startDate, endDate time.Time,
	callback func(record model.DashboardSnapshot) error,
) error {
	query := `
		SELECT id, family_group_id, date, total_invested, total_current_value,
		       total_income, total_expenses, calculated_at
		FROM dashboard_snapshot
		WHERE family_group_id = ?
		AND date >= ?
		AND date <= ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query,
		familyGroupID,
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to query dashboard_snapshot table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.DashboardSnapshot
		var dateStr, calculatedAtStr string
		err := rows.Scan(
			&s.ID, &s.FamilyGroupID, &dateStr,
			&s.TotalInvested, &s.TotalCurrentValue,
			&s.TotalIncome, &s.TotalExpenses, &calculatedAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to scan dashboard_snapshot results: %w", err)
		}
		s.Date, err = ParseTime(dateStr)
		if err != nil {
			return fmt.Errorf("failed to parse snapshot date: %w", err)
		}
		s.CalculatedAt, _ = ParseTime(calculatedAtStr)

		if err := callback(s); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating dashboard_snapshot table: %w", err)
	}

	return nil
}

// UpsertSnapshot stores the snapshot for one family group and date,
// replacing any existing row for the same key. Re-running the refresh job
// is therefore idempotent.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s *model.DashboardSnapshot) error {
	query := `
		INSERT INTO dashboard_snapshot (
			id, family_group_id, date, total_invested, total_current_value,
			total_income, total_expenses, calculated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(family_group_id, date)
		DO UPDATE SET
			total_invested = excluded.total_invested,
			total_current_value = excluded.total_current_value,
			total_income = excluded.total_income,
			total_expenses = excluded.total_expenses,
			calculated_at = excluded.calculated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.FamilyGroupID, s.Date.Format("2006-01-02"),
		s.TotalInvested, s.TotalCurrentValue,
		s.TotalIncome, s.TotalExpenses,
		s.CalculatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert dashboard snapshot: %w", err)
	}

	return nil
}
