package service

import (
	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// PortfolioService derives holdings and SIP summaries from the transaction
// log. It loads the raw inputs and delegates the actual math to the pure
// fold functions; nothing derived is ever persisted or cached, so results
// are always consistent with the latest writes.
type PortfolioService struct {
	transactionRepo *repository.TransactionRepository
	priceRepo       *repository.PriceRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(
	transactionRepo *repository.TransactionRepository,
	priceRepo *repository.PriceRepository,
) *PortfolioService {
	return &PortfolioService{
		transactionRepo: transactionRepo,
		priceRepo:       priceRepo,
	}
}

// loadInputs fetches the transaction list and the manual price map for a
// family group in parallel.
func (s *PortfolioService) loadInputs(familyGroupID string) ([]model.Transaction, map[string]float64, error) {
	var transactions []model.Transaction
	var prices map[string]float64

	var g errgroup.Group
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetTransactions(familyGroupID)
		return err
	})
	g.Go(func() error {
		var err error
		prices, err = s.priceRepo.GetPriceMap(familyGroupID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return transactions, prices, nil
}

// GetHoldings computes the current holdings visible under the member scope.
func (s *PortfolioService) GetHoldings(familyGroupID string, scope MemberScope) ([]model.Holding, error) {
	transactions, prices, err := s.loadInputs(familyGroupID)
	if err != nil {
		return nil, err
	}

	return ComputeHoldings(scope.Filter(transactions), prices), nil
}

// GetSIPSummaries computes per-group SIP performance visible under the
// member scope.
func (s *PortfolioService) GetSIPSummaries(familyGroupID string, scope MemberScope) ([]model.SIPSummary, error) {
	transactions, prices, err := s.loadInputs(familyGroupID)
	if err != nil {
		return nil, err
	}

	return ComputeSIPSummaries(scope.Filter(transactions), prices), nil
}

// GetMetrics computes the full dashboard record visible under the member
// scope: holdings totals, allocation, cash-flow aggregates and the monthly
// series.
func (s *PortfolioService) GetMetrics(familyGroupID string, scope MemberScope) (model.DashboardMetrics, error) {
	transactions, prices, err := s.loadInputs(familyGroupID)
	if err != nil {
		return model.DashboardMetrics{}, err
	}

	visible := scope.Filter(transactions)
	holdings := ComputeHoldings(visible, prices)

	return ComputeMetrics(holdings, visible), nil
}
