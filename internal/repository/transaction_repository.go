package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	id, family_group_id, member_id, asset_name, asset_type, type, date,
	quantity, price, amount, sip_id, category, platform, notes, created_at`

// scanTransaction scans one row into a Transaction, handling nullable
// columns and date parsing.
func scanTransaction(rows interface{ Scan(...any) error }) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string
	var sipID, category, platform, notes sql.NullString

	err := rows.Scan(
		&t.ID,
		&t.FamilyGroupID,
		&t.MemberID,
		&t.AssetName,
		&t.AssetType,
		&t.Type,
		&dateStr,
		&t.Quantity,
		&t.Price,
		&t.Amount,
		&sipID,
		&category,
		&platform,
		&notes,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		// created_at is informational; fall back to the transaction date
		t.CreatedAt = t.Date
	}

	t.SIPID = sipID.String
	t.Category = category.String
	t.Platform = platform.String
	t.Notes = notes.String

	return t, nil
}

// GetTransactions retrieves all transactions for a family group, sorted by
// date ascending with stable insertion order on ties (created_at, then id).
// The insertion-order tiebreak matters: the holdings fold relies on it.
func (r *TransactionRepository) GetTransactions(familyGroupID string) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		WHERE family_group_id = ?
		ORDER BY date ASC, created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, familyGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		WHERE id = ?
	`

	row := r.db.QueryRow(query, transactionID)
	t, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Transaction{}, apperrors.ErrTransactionNotFound
		}
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	return t, nil
}

// InsertTransaction stores a new transaction.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO "transaction" (
			id, family_group_id, member_id, asset_name, asset_type, type,
			date, quantity, price, amount, sip_id, category, platform, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.FamilyGroupID,
		t.MemberID,
		t.AssetName,
		t.AssetType,
		t.Type,
		t.Date.Format("2006-01-02"),
		t.Quantity,
		t.Price,
		t.Amount,
		nullIfEmpty(t.SIPID),
		nullIfEmpty(t.Category),
		nullIfEmpty(t.Platform),
		nullIfEmpty(t.Notes),
		t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		UPDATE "transaction"
		SET member_id = ?, asset_name = ?, asset_type = ?, type = ?, date = ?,
		    quantity = ?, price = ?, amount = ?, sip_id = ?, category = ?,
		    platform = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.MemberID,
		t.AssetName,
		t.AssetType,
		t.Type,
		t.Date.Format("2006-01-02"),
		t.Quantity,
		t.Price,
		t.Amount,
		nullIfEmpty(t.SIPID),
		nullIfEmpty(t.Category),
		nullIfEmpty(t.Platform),
		nullIfEmpty(t.Notes),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction by ID.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// GetFamilyGroupIDs returns the IDs of all family groups that have at least
// one transaction. Used by the snapshot scheduler to decide what to refresh.
func (r *TransactionRepository) GetFamilyGroupIDs() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT family_group_id FROM "transaction"`)
	if err != nil {
		return nil, fmt.Errorf("failed to query family group ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan family group id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating family group ids: %w", err)
	}

	return ids, nil
}

// nullIfEmpty maps an empty string to a SQL NULL.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
