package model

import "time"

// PriceOverride is a manually quoted current price for one asset,
// maintained by the "update price" user action. Absence of an override
// means aggregation falls back to average cost as the current price.
type PriceOverride struct {
	ID            string    `json:"id"`
	FamilyGroupID string    `json:"familyGroupId"`
	AssetName     string    `json:"assetName"`
	Price         float64   `json:"price"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
