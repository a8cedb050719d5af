package validation

import (
	"strings"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
)

// ValidateCreateSIPSchedule validates a SIP schedule creation request.
// DayOfMonth is capped at 28 so the schedule is due every month.
func ValidateCreateSIPSchedule(req request.CreateSIPScheduleRequest) error {
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
	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}
	if req.DayOfMonth < 1 || req.DayOfMonth > 28 {
		errors["dayOfMonth"] = "dayOfMonth must be between 1 and 28"
	}
	if strings.TrimSpace(req.StartDate) == "" {
		errors["startDate"] = "startDate is required"
	} else if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		errors["startDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdatePrice validates a manual price quote request.
func ValidateUpdatePrice(req request.UpdatePriceRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.FamilyGroupID); err != nil {
		errors["familyGroupId"] = err.Error()
	}
	if strings.TrimSpace(req.AssetName) == "" {
		errors["assetName"] = "assetName is required"
	}
	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
