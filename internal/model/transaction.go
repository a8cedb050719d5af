package model

import "time"

// Asset type values accepted on a transaction.
const (
	AssetStock      = "Stock"
	AssetMutualFund = "Mutual Fund"
	AssetGold       = "Gold"
	AssetCash       = "Cash"
	AssetETF        = "ETF"
	AssetFD         = "FD"
	AssetOther      = "Other"
)

// Transaction type values. Buy, SIP and Deposit add to a position,
// Sell and Withdraw reduce it, Income and Expense are pure cash flow
// and never touch holdings.
const (
	TypeBuy      = "Buy"
	TypeSell     = "Sell"
	TypeSIP      = "SIP"
	TypeDeposit  = "Deposit"
	TypeWithdraw = "Withdraw"
	TypeIncome   = "Income"
	TypeExpense  = "Expense"
)

// Default category labels applied to uncategorised cash-flow transactions.
const (
	DefaultIncomeCategory  = "Other Income"
	DefaultExpenseCategory = "Other Expense"
)

// Transaction is the single source of truth for all derived data.
// Amount is always Quantity * Price; it is computed by the service layer
// on create and update and is never accepted from a client directly.
//
// AssetName is the natural aggregation key: two transactions with the same
// asset name belong to the same holding regardless of any other identifier.
type Transaction struct {
	ID            string    `json:"id"`
	FamilyGroupID string    `json:"familyGroupId"`
	MemberID      string    `json:"memberId"`
	AssetName     string    `json:"assetName"`
	AssetType     string    `json:"assetType"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
	Quantity      float64   `json:"quantity"`
	Price         float64   `json:"price"`
	Amount        float64   `json:"amount"`
	SIPID         string    `json:"sipId,omitempty"`
	Category      string    `json:"category,omitempty"`
	Platform      string    `json:"platform,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// IsCashFlow reports whether the transaction is a pure cash-flow event
// (Income or Expense) with no position impact.
func (t Transaction) IsCashFlow() bool {
	return t.Type == TypeIncome || t.Type == TypeExpense
}

// IsInflow reports whether the transaction adds units to a position.
func (t Transaction) IsInflow() bool {
	return t.Type == TypeBuy || t.Type == TypeSIP || t.Type == TypeDeposit
}

// IsOutflow reports whether the transaction removes units from a position.
func (t Transaction) IsOutflow() bool {
	return t.Type == TypeSell || t.Type == TypeWithdraw
}

// SIPGroupKey returns the key used to group SIP transactions into
// summaries: the explicit SIP ID when set, the asset name otherwise.
func (t Transaction) SIPGroupKey() string {
	if t.SIPID != "" {
		return t.SIPID
	}
	return t.AssetName
}

// CategoryLabel returns the category for breakdown purposes, substituting
// the default label when the transaction carries none.
func (t Transaction) CategoryLabel() string {
	if t.Category != "" {
		return t.Category
	}
	if t.Type == TypeIncome {
		return DefaultIncomeCategory
	}
	return DefaultExpenseCategory
}
