package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/repository"
)

// SnapshotService maintains the dashboard_snapshot table: a pre-calculated
// daily dashboard state per family group. The nightly scheduler calls
// RefreshAll; reads go straight to the table so the history endpoint never
// recomputes from raw transactions.
type SnapshotService struct {
	snapshotRepo     *repository.SnapshotRepository
	transactionRepo  *repository.TransactionRepository
	portfolioService *PortfolioService
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	transactionRepo *repository.TransactionRepository,
	portfolioService *PortfolioService,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:     snapshotRepo,
		transactionRepo:  transactionRepo,
		portfolioService: portfolioService,
	}
}

// GetHistory returns the stored snapshots for a family group within the
// inclusive date range, oldest first.
func (s *SnapshotService) GetHistory(familyGroupID string, startDate, endDate time.Time) ([]model.DashboardSnapshot, error) {
	history := []model.DashboardSnapshot{}

	err := s.snapshotRepo.GetSnapshots(familyGroupID, startDate, endDate,
		func(record model.DashboardSnapshot) error {
			history = append(history, record)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return history, nil
}

// RefreshGroup recomputes and upserts today's snapshot for one family
// group. Monetary totals are rounded to two decimals before storage.
// Upserting by (family group, date) makes re-runs idempotent.
func (s *SnapshotService) RefreshGroup(ctx context.Context, familyGroupID string, now time.Time) error {
	metrics, err := s.portfolioService.GetMetrics(familyGroupID, AllMembers())
	if err != nil {
		return fmt.Errorf("failed to compute metrics for group %s: %w", familyGroupID, err)
	}

	snapshot := &model.DashboardSnapshot{
		ID:                uuid.New().String(),
		FamilyGroupID:     familyGroupID,
		Date:              time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TotalInvested:     round(metrics.TotalInvested),
		TotalCurrentValue: round(metrics.TotalCurrentValue),
		TotalIncome:       round(metrics.TotalIncome),
		TotalExpenses:     round(metrics.TotalExpenses),
		CalculatedAt:      now,
	}

	return s.snapshotRepo.UpsertSnapshot(ctx, snapshot)
}

// RefreshAll recomputes today's snapshot for every family group that has
// transactions. Failures for one group are logged and do not stop the
// others; the first error is returned after the full pass.
func (s *SnapshotService) RefreshAll(ctx context.Context, now time.Time) error {
	groupIDs, err := s.transactionRepo.GetFamilyGroupIDs()
	if err != nil {
		return fmt.Errorf("failed to list family groups: %w", err)
	}

	var firstErr error
	for _, id := range groupIDs {
		if err := s.RefreshGroup(ctx, id, now); err != nil {
			log.Printf("snapshot refresh failed for group %s: %v", id, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
