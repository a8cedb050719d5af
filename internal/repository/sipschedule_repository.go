package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/model"
)

// SIPScheduleRepository provides data access methods for the sip_schedule table.
type SIPScheduleRepository struct {
	db *sql.DB
}

// NewSIPScheduleRepository creates a new SIPScheduleRepository with the provided database connection.
func NewSIPScheduleRepository(db *sql.DB) *SIPScheduleRepository {
	return &SIPScheduleRepository{db: db}
}

// GetSchedules retrieves all SIP schedules for a family group.
func (r *SIPScheduleRepository) GetSchedules(familyGroupID string) ([]model.SIPSchedule, error) {
	query := `
		SELECT id, family_group_id, member_id, asset_name, amount,
		       day_of_month, start_date, active, created_at
		FROM sip_schedule
		WHERE family_group_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, familyGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sip_schedule table: %w", err)
	}
	defer rows.Close()

	schedules := []model.SIPSchedule{}
	for rows.Next() {
		var s model.SIPSchedule
		var startDateStr, createdAtStr string
		err := rows.Scan(
			&s.ID, &s.FamilyGroupID, &s.MemberID, &s.AssetName, &s.Amount,
			&s.DayOfMonth, &startDateStr, &s.Active, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sip_schedule table results: %w", err)
		}
		s.StartDate, err = ParseTime(startDateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start date: %w", err)
		}
		s.CreatedAt, _ = ParseTime(createdAtStr)
		schedules = append(schedules, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sip_schedule table: %w", err)
	}

	return schedules, nil
}

// InsertSchedule stores a new SIP schedule.
func (r *SIPScheduleRepository) InsertSchedule(ctx context.Context, s *model.SIPSchedule) error {
	query := `
		INSERT INTO sip_schedule (
			id, family_group_id, member_id, asset_name, amount,
			day_of_month, start_date, active, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.FamilyGroupID, s.MemberID, s.AssetName, s.Amount,
		s.DayOfMonth, s.StartDate.Format("2006-01-02"), s.Active,
		s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sip schedule: %w", err)
	}

	return nil
}

// SetScheduleActive flips the active flag on a schedule.
func (r *SIPScheduleRepository) SetScheduleActive(ctx context.Context, scheduleID string, active bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sip_schedule SET active = ? WHERE id = ?`, active, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to update sip schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSIPScheduleNotFound
	}

	return nil
}

// DeleteSchedule removes a SIP schedule by ID.
func (r *SIPScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sip_schedule WHERE id = ?`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete sip schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSIPScheduleNotFound
	}

	return nil
}
