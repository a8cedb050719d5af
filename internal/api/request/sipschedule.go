package request

// CreateSIPScheduleRequest is the payload for declaring a recurring SIP.
type CreateSIPScheduleRequest struct {
	FamilyGroupID string  `json:"familyGroupId"`
	MemberID      string  `json:"memberId"`
	AssetName     string  `json:"assetName"`
	Amount        float64 `json:"amount"`
	DayOfMonth    int     `json:"dayOfMonth"`
	StartDate     string  `json:"startDate"`
}

// SetScheduleActiveRequest is the payload for pausing or resuming a
// schedule.
type SetScheduleActiveRequest struct {
	Active bool `json:"active"`
}

// UpdatePriceRequest is the payload for manually quoting an asset's
// current price.
type UpdatePriceRequest struct {
	FamilyGroupID string  `json:"familyGroupId"`
	AssetName     string  `json:"assetName"`
	Price         float64 `json:"price"`
}
