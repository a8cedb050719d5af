package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/repository"
)

// PriceService handles manual price overrides, the only source of "current"
// prices in the system. There is no market-data integration: an asset
// without an override is valued at its average cost.
type PriceService struct {
	priceRepo *repository.PriceRepository
}

// NewPriceService creates a new PriceService with the provided repository dependencies.
func NewPriceService(priceRepo *repository.PriceRepository) *PriceService {
	return &PriceService{priceRepo: priceRepo}
}

// GetPriceOverrides returns all manual quotes for a family group.
func (s *PriceService) GetPriceOverrides(familyGroupID string) ([]model.PriceOverride, error) {
	return s.priceRepo.GetPriceOverrides(familyGroupID)
}

// UpdatePrice records the latest manual quote for an asset, replacing any
// previous one.
func (s *PriceService) UpdatePrice(ctx context.Context, req request.UpdatePriceRequest) (*model.PriceOverride, error) {
	override := &model.PriceOverride{
		ID:            uuid.New().String(),
		FamilyGroupID: req.FamilyGroupID,
		AssetName:     req.AssetName,
		Price:         req.Price,
		UpdatedAt:     time.Now(),
	}

	if err := s.priceRepo.UpsertPrice(ctx, override); err != nil {
		return nil, err
	}

	return override, nil
}
