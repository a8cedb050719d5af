package handlers

import (
	"net/http"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/api/response"
	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/service"
	"github.com/hazyfin/family-finance-backend/internal/validation"
)

// PriceHandler handles HTTP requests for manual asset price quotes.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// ListPrices handles GET requests for a family group's manual quotes.
//
// Endpoint: GET /api/price?familyGroupId={uuid}
// Response: 200 OK with array of PriceOverride
func (h *PriceHandler) ListPrices(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	prices, err := h.priceService.GetPriceOverrides(groupID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePrices.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, prices)
}

// UpdatePrice handles PUT requests to record the latest manual quote for
// an asset, replacing any previous one.
//
// Endpoint: PUT /api/price (API key required)
// Response: 200 OK with PriceOverride
// Error: 400 Bad Request if validation fails
func (h *PriceHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdatePriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	override, err := h.priceService.UpdatePrice(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, override)
}
