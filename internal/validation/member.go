package validation

import (
	"strings"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
)

// ValidateCreateMember validates a member creation request.
func ValidateCreateMember(req request.CreateMemberRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.FamilyGroupID); err != nil {
		errors["familyGroupId"] = err.Error()
	}
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.Relation) == "" {
		errors["relation"] = "relation is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateMember validates a member update request.
func ValidateUpdateMember(req request.UpdateMemberRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.Relation != nil && strings.TrimSpace(*req.Relation) == "" {
		errors["relation"] = "relation cannot be empty"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateJoin validates a join-family request.
func ValidateJoin(req request.JoinRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Token) == "" {
		errors["token"] = "token is required"
	}
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.Relation) == "" {
		errors["relation"] = "relation is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
