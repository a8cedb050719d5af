package handlers

import (
	"net/http"

	"github.com/hazyfin/family-finance-backend/internal/api/response"
	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/service"
)

// PortfolioHandler handles HTTP requests for derived portfolio data:
// holdings and SIP summaries.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Holdings handles GET requests for current per-asset positions.
//
// Endpoint: GET /api/portfolio/holdings?familyGroupId={uuid}&member={uuid|all}
// Response: 200 OK with array of Holding
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	scope := service.ParseMemberScope(r.URL.Query().Get("member"))
	holdings, err := h.portfolioService.GetHoldings(groupID, scope)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// SIPSummaries handles GET requests for per-group SIP performance.
//
// Endpoint: GET /api/portfolio/sip?familyGroupId={uuid}&member={uuid|all}
// Response: 200 OK with array of SIPSummary
func (h *PortfolioHandler) SIPSummaries(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	scope := service.ParseMemberScope(r.URL.Query().Get("member"))
	summaries, err := h.portfolioService.GetSIPSummaries(groupID, scope)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summaries)
}
