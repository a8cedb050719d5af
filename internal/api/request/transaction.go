package request

// CreateTransactionRequest is the payload for logging a new transaction.
// Amount is intentionally absent: it is always derived as quantity * price
// by the service layer.
type CreateTransactionRequest struct {
	FamilyGroupID string  `json:"familyGroupId"`
	MemberID      string  `json:"memberId"`
	AssetName     string  `json:"assetName"`
	AssetType     string  `json:"assetType"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	SIPID         string  `json:"sipId,omitempty"`
	Category      string  `json:"category,omitempty"`
	Platform      string  `json:"platform,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// UpdateTransactionRequest is the payload for editing a transaction.
// All fields are optional; amount is re-derived after applying changes.
type UpdateTransactionRequest struct {
	MemberID  *string  `json:"memberId,omitempty"`
	AssetName *string  `json:"assetName,omitempty"`
	AssetType *string  `json:"assetType,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Date      *string  `json:"date,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	SIPID     *string  `json:"sipId,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Platform  *string  `json:"platform,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}
