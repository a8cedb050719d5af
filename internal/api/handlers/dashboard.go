package handlers

import (
	"net/http"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/api/response"
	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/service"
)

// DashboardHandler handles HTTP requests for dashboard metrics and the
// snapshot history.
type DashboardHandler struct {
	portfolioService *service.PortfolioService
	snapshotService  *service.SnapshotService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependencies.
func NewDashboardHandler(portfolioService *service.PortfolioService, snapshotService *service.SnapshotService) *DashboardHandler {
	return &DashboardHandler{
		portfolioService: portfolioService,
		snapshotService:  snapshotService,
	}
}

// Metrics handles GET requests for the live dashboard record.
//
// Endpoint: GET /api/dashboard/metrics?familyGroupId={uuid}&member={uuid|all}
// Response: 200 OK with DashboardMetrics
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	scope := service.ParseMemberScope(r.URL.Query().Get("member"))
	metrics, err := h.portfolioService.GetMetrics(groupID, scope)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeMetrics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, metrics)
}

// History handles GET requests for stored daily snapshots.
//
// Endpoint: GET /api/dashboard/history?familyGroupId={uuid}&start=YYYY-MM-DD&end=YYYY-MM-DD
// Response: 200 OK with array of DashboardSnapshot
// Error: 400 Bad Request on missing/invalid dates or start after end
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid start date", err.Error())
		return
	}
	endDate, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid end date", err.Error())
		return
	}
	if startDate.After(endDate) {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), "start is after end")
		return
	}

	history, err := h.snapshotService.GetHistory(groupID, startDate, endDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}

// RefreshSnapshot handles POST requests to rebuild today's snapshot for a
// family group without waiting for the nightly job.
//
// Endpoint: POST /api/dashboard/snapshot?familyGroupId={uuid} (API key required)
// Response: 202 Accepted
func (h *DashboardHandler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	if err := h.snapshotService.RefreshGroup(r.Context(), groupID, time.Now()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusAccepted, nil)
}
