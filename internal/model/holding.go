package model

// Holding represents the current position in one asset, derived entirely
// from the transaction log. Holdings are recomputed from scratch on every
// request; nothing here is persisted.
//
// CurrentPrice is the manual price override when one exists, otherwise the
// weighted-average cost. Absent an override a holding therefore reports
// zero unrealized gain by definition.
type Holding struct {
	AssetName       string  `json:"assetName"`
	AssetType       string  `json:"assetType"`
	Quantity        float64 `json:"quantity"`
	TotalInvested   float64 `json:"totalInvested"`
	AvgPrice        float64 `json:"avgPrice"`
	CurrentPrice    float64 `json:"currentPrice"`
	CurrentValue    float64 `json:"currentValue"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}
