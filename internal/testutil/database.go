package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Family group table
		CREATE TABLE family_group (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Member table
		CREATE TABLE member (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			family_group_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			relation VARCHAR(30) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(family_group_id) REFERENCES family_group(id) ON DELETE CASCADE
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			family_group_id VARCHAR(36) NOT NULL,
			member_id VARCHAR(36) NOT NULL,
			asset_name VARCHAR(200) NOT NULL,
			asset_type VARCHAR(20) NOT NULL,
			type VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			quantity FLOAT NOT NULL,
			price FLOAT NOT NULL,
			amount FLOAT NOT NULL,
			sip_id VARCHAR(100),
			category VARCHAR(100),
			platform VARCHAR(50),
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(family_group_id) REFERENCES family_group(id) ON DELETE CASCADE,
			FOREIGN KEY(member_id) REFERENCES member(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_transaction_family_date ON "transaction"(family_group_id, date);
		CREATE INDEX idx_transaction_member ON "transaction"(member_id);

		-- SIP schedule table
		CREATE TABLE sip_schedule (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			family_group_id VARCHAR(36) NOT NULL,
			member_id VARCHAR(36) NOT NULL,
			asset_name VARCHAR(200) NOT NULL,
			amount FLOAT NOT NULL,
			day_of_month INTEGER NOT NULL,
			start_date DATE NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(family_group_id) REFERENCES family_group(id) ON DELETE CASCADE,
			FOREIGN KEY(member_id) REFERENCES member(id) ON DELETE CASCADE
		);

		-- Manual price quote table
		CREATE TABLE price_override (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			family_group_id VARCHAR(36) NOT NULL,
			asset_name VARCHAR(200) NOT NULL,
			price FLOAT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(family_group_id) REFERENCES family_group(id) ON DELETE CASCADE,
			CONSTRAINT unique_family_asset UNIQUE (family_group_id, asset_name)
		);

		-- Daily dashboard snapshot table
		CREATE TABLE dashboard_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			family_group_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			total_invested FLOAT NOT NULL,
			total_current_value FLOAT NOT NULL,
			total_income FLOAT NOT NULL,
			total_expenses FLOAT NOT NULL,
			calculated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(family_group_id) REFERENCES family_group(id) ON DELETE CASCADE,
			CONSTRAINT unique_family_date UNIQUE (family_group_id, date)
		);
	`

	_, err := db.Exec(schema)
	return err
}
