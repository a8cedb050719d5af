package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hazyfin/family-finance-backend/internal/validation"
)

// parseJSON decodes the request body into the given request type.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}
	return req, nil
}

// familyGroupID extracts and validates the required familyGroupId query
// parameter. Read endpoints are always scoped to one family group.
func familyGroupID(r *http.Request) (string, error) {
	id := r.URL.Query().Get("familyGroupId")
	if id == "" {
		return "", fmt.Errorf("familyGroupId query parameter is required")
	}
	if err := validation.ValidateUUID(id); err != nil {
		return "", err
	}
	return id, nil
}
