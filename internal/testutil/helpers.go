package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hazyfin/family-finance-backend/internal/repository"
	"github.com/hazyfin/family-finance-backend/internal/service"
)

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(transactionRepo)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	priceRepo := repository.NewPriceRepository(db)

	return service.NewPortfolioService(transactionRepo, priceRepo)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	portfolioService := NewTestPortfolioService(t, db)

	return service.NewSnapshotService(snapshotRepo, transactionRepo, portfolioService)
}

func NewTestSIPScheduleService(t *testing.T, db *sql.DB) *service.SIPScheduleService {
	t.Helper()

	scheduleRepo := repository.NewSIPScheduleRepository(db)

	return service.NewSIPScheduleService(scheduleRepo)
}

func NewTestMemberService(t *testing.T, db *sql.DB) *service.MemberService {
	t.Helper()

	memberRepo := repository.NewMemberRepository(db)

	return service.NewMemberService(memberRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestPriceService(t *testing.T, db *sql.DB) *service.PriceService {
	t.Helper()

	priceRepo := repository.NewPriceRepository(db)

	return service.NewPriceService(priceRepo)
}

func NewTestFamilyService(t *testing.T, db *sql.DB, key string) *service.FamilyService {
	t.Helper()

	familyService, err := service.NewFamilyService(NewTestMemberService(t, db), key, 72*time.Hour)
	if err != nil {
		t.Fatalf("Failed to create test family service: %v", err)
	}

	return familyService
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique display name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Test Family")
//	// Returns: "Test Family ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Test"
	}
	return base + " " + randomAlphanumeric(6)
}

func randomAlphanumeric(n int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
