package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/model"
)

// MemberRepository provides data access methods for the member and
// family_group tables.
type MemberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new MemberRepository with the provided database connection.
func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetMembers retrieves all members of a family group, oldest first.
func (r *MemberRepository) GetMembers(familyGroupID string) ([]model.Member, error) {
	query := `
		SELECT id, family_group_id, name, relation, created_at
		FROM member
		WHERE family_group_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, familyGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query member table: %w", err)
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		var m model.Member
		var createdAtStr string
		if err := rows.Scan(&m.ID, &m.FamilyGroupID, &m.Name, &m.Relation, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan member table results: %w", err)
		}
		m.CreatedAt, _ = ParseTime(createdAtStr)
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member table: %w", err)
	}

	return members, nil
}

// GetMember retrieves a single member by ID.
func (r *MemberRepository) GetMember(memberID string) (model.Member, error) {
	query := `
		SELECT id, family_group_id, name, relation, created_at
		FROM member
		WHERE id = ?
	`

	var m model.Member
	var createdAtStr string
	err := r.db.QueryRow(query, memberID).Scan(&m.ID, &m.FamilyGroupID, &m.Name, &m.Relation, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Member{}, apperrors.ErrMemberNotFound
		}
		return model.Member{}, fmt.Errorf("failed to scan member: %w", err)
	}
	m.CreatedAt, _ = ParseTime(createdAtStr)

	return m, nil
}

// InsertMember stores a new member.
func (r *MemberRepository) InsertMember(ctx context.Context, m *model.Member) error {
	query := `
		INSERT INTO member (id, family_group_id, name, relation, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.FamilyGroupID, m.Name, m.Relation,
		m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

// UpdateMember updates a member's display fields.
func (r *MemberRepository) UpdateMember(ctx context.Context, m *model.Member) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE member SET name = ?, relation = ? WHERE id = ?`,
		m.Name, m.Relation, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// DeleteMember removes a member. Transactions owned by the member are
// removed with it (ON DELETE CASCADE).
func (r *MemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM member WHERE id = ?`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// GetFamilyGroup retrieves a family group by ID.
func (r *MemberRepository) GetFamilyGroup(familyGroupID string) (model.FamilyGroup, error) {
	var g model.FamilyGroup
	var createdAtStr string
	err := r.db.QueryRow(
		`SELECT id, name, created_at FROM family_group WHERE id = ?`,
		familyGroupID,
	).Scan(&g.ID, &g.Name, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.FamilyGroup{}, apperrors.ErrFamilyGroupNotFound
		}
		return model.FamilyGroup{}, fmt.Errorf("failed to scan family group: %w", err)
	}
	g.CreatedAt, _ = ParseTime(createdAtStr)

	return g, nil
}

// InsertFamilyGroup stores a new family group.
func (r *MemberRepository) InsertFamilyGroup(ctx context.Context, g *model.FamilyGroup) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO family_group (id, name, created_at) VALUES (?, ?, ?)`,
		g.ID, g.Name, g.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert family group: %w", err)
	}

	return nil
}
