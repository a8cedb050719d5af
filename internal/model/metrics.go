package model

// AssetAllocation is one slice of the allocation chart: the summed current
// value of all holdings sharing an asset type.
type AssetAllocation struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CategorySummary is the running amount for one income or expense
// category. Category names are assumed not to collide across the two
// types.
type CategorySummary struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"` // Income or Expense
}

// MonthlyFlow is one calendar month of cash-flow activity: income,
// expenses and investment contributions.
type MonthlyFlow struct {
	Month      string  `json:"month"` // YYYY-MM
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	Investment float64 `json:"investment"`
}

// DashboardMetrics combines holdings totals with cash-flow aggregates for
// the dashboard. Fully derived, never persisted.
type DashboardMetrics struct {
	TotalInvested      float64           `json:"totalInvested"`
	TotalCurrentValue  float64           `json:"totalCurrentValue"`
	TotalGainLoss      float64           `json:"totalGainLoss"`
	OverallGainPercent float64           `json:"overallGainPercent"`
	AssetAllocation    []AssetAllocation `json:"assetAllocation"`
	TotalIncome        float64           `json:"totalIncome"`
	TotalExpenses      float64           `json:"totalExpenses"`
	CategoryBreakdown  []CategorySummary `json:"categoryBreakdown"`
	MonthlyFlows       []MonthlyFlow     `json:"monthlyFlows"`
}
