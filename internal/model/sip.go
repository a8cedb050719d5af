package model

import "time"

// SIPSummary is the derived performance view of one SIP group.
// Transactions are grouped by their explicit SIP ID, falling back to the
// asset name when none was recorded. SIP contributions are purely
// additive; there is no sell-side event in this model.
type SIPSummary struct {
	SIPID         string    `json:"sipId"`
	AssetName     string    `json:"assetName"`
	TotalInvested float64   `json:"totalInvested"`
	TotalUnits    float64   `json:"totalUnits"`
	AvgNav        float64   `json:"avgNav"`
	LatestNav     float64   `json:"latestNav"`
	CurrentValue  float64   `json:"currentValue"`
	GainLoss      float64   `json:"gainLoss"`
	GainPercent   float64   `json:"gainPercent"`
	LastDate      time.Time `json:"lastDate"`
}

// SIPSchedule is a user-authored recurring payment declaration. It is
// independent of logged SIP transactions and only feeds the upcoming-due
// projection; it never affects holdings math.
type SIPSchedule struct {
	ID            string    `json:"id"`
	FamilyGroupID string    `json:"familyGroupId"`
	MemberID      string    `json:"memberId"`
	AssetName     string    `json:"assetName"`
	Amount        float64   `json:"amount"`
	DayOfMonth    int       `json:"dayOfMonth"`
	StartDate     time.Time `json:"startDate"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// UpcomingSIP pairs a schedule with its next due date, the first
// occurrence of DayOfMonth on or after the reference date.
type UpcomingSIP struct {
	SIPSchedule
	NextDate time.Time `json:"nextDate"`
}
