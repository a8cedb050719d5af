package model

import "time"

// DashboardSnapshot is a pre-calculated daily dashboard state for one
// family group, stored in the dashboard_snapshot table. Snapshots are
// refreshed by the nightly scheduler and serve the history endpoint
// without recomputing from raw transactions.
type DashboardSnapshot struct {
	ID                string    `json:"id"`
	FamilyGroupID     string    `json:"familyGroupId"`
	Date              time.Time `json:"date"`
	TotalInvested     float64   `json:"totalInvested"`
	TotalCurrentValue float64   `json:"totalCurrentValue"`
	TotalIncome       float64   `json:"totalIncome"`
	TotalExpenses     float64   `json:"totalExpenses"`
	CalculatedAt      time.Time `json:"calculatedAt"`
}
