package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/model"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	model.TypeBuy: true, model.TypeSell: true, model.TypeSIP: true,
	model.TypeDeposit: true, model.TypeWithdraw: true,
	model.TypeIncome: true, model.TypeExpense: true,
}

// ValidAssetType contains the allowed asset type values.
var ValidAssetType = map[string]bool{
	model.AssetStock: true, model.AssetMutualFund: true, model.AssetGold: true,
	model.AssetCash: true, model.AssetETF: true, model.AssetFD: true,
	model.AssetOther: true,
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - familyGroupId, memberId: valid UUIDs
//   - assetName: non-empty
//   - assetType: one of the known asset types
//   - type: one of the known transaction types
//   - date: YYYY-MM-DD
//   - price: positive
//   - quantity: positive for investment types; cash-flow types may omit it
//     (the service defaults it to 1)
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.FamilyGroupID); err != nil {
		errors["familyGroupId"] = err.Error()
	}
	if err := ValidateUUID(req.MemberID); err != nil {
		errors["memberId"] = err.Error()
	}

	if strings.TrimSpace(req.AssetName) == "" {
		errors["assetName"] = "assetName is required"
	}

	if strings.TrimSpace(req.AssetType) == "" {
		errors["assetType"] = "assetType is required"
	} else if !ValidAssetType[req.AssetType] {
		errors["assetType"] = fmt.Sprintf("invalid asset type: %s", req.AssetType)
	}

	cashFlow := req.Type == model.TypeIncome || req.Type == model.TypeExpense
	if strings.TrimSpace(req.Type) == "" {
		errors["transactionType"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if req.Quantity < 0 || (!cashFlow && req.Quantity <= 0) {
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided they must meet the same
// constraints as create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.MemberID != nil {
		if err := ValidateUUID(*req.MemberID); err != nil {
			errors["memberId"] = err.Error()
		}
	}
	if req.AssetName != nil && strings.TrimSpace(*req.AssetName) == "" {
		errors["assetName"] = "assetName cannot be empty"
	}
	if req.AssetType != nil && !ValidAssetType[*req.AssetType] {
		errors["assetType"] = fmt.Sprintf("invalid asset type: %s", *req.AssetType)
	}
	if req.Type != nil && !ValidTransactionType[*req.Type] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", *req.Type)
	}
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}
	if req.Price != nil && *req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
