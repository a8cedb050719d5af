package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/api/response"
	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/service"
	"github.com/hazyfin/family-finance-backend/internal/validation"
)

// SIPScheduleHandler handles HTTP requests for recurring SIP declarations.
type SIPScheduleHandler struct {
	scheduleService *service.SIPScheduleService
}

// NewSIPScheduleHandler creates a new SIPScheduleHandler with the provided service dependency.
func NewSIPScheduleHandler(scheduleService *service.SIPScheduleService) *SIPScheduleHandler {
	return &SIPScheduleHandler{scheduleService: scheduleService}
}

// ListSchedules handles GET requests for a family group's SIP schedules.
//
// Endpoint: GET /api/sip-schedule?familyGroupId={uuid}
// Response: 200 OK with array of SIPSchedule
func (h *SIPScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	schedules, err := h.scheduleService.GetSchedules(groupID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSchedules.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, schedules)
}

// Upcoming handles GET requests for due-date projections of the active
// schedules, soonest first.
//
// Endpoint: GET /api/sip-schedule/upcoming?familyGroupId={uuid}
// Response: 200 OK with array of UpcomingSIP
func (h *SIPScheduleHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	upcoming, err := h.scheduleService.GetUpcoming(groupID, time.Now())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSchedules.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, upcoming)
}

// CreateSchedule handles POST requests to declare a new recurring SIP.
//
// Endpoint: POST /api/sip-schedule
// Response: 201 Created with SIPSchedule
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *SIPScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSIPScheduleRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSIPSchedule(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create sip schedule", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, schedule)
}

// SetActive handles PUT requests to pause or resume a schedule.
//
// Endpoint: PUT /api/sip-schedule/{uuid}/active
// Response: 200 OK
// Error: 404 Not Found if schedule not found
func (h *SIPScheduleHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.SetScheduleActiveRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.scheduleService.SetActive(r.Context(), scheduleID, req.Active); err != nil {
		if errors.Is(err, apperrors.ErrSIPScheduleNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSIPScheduleNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update sip schedule", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}

// DeleteSchedule handles DELETE requests to remove a schedule.
//
// Endpoint: DELETE /api/sip-schedule/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if schedule not found
func (h *SIPScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "uuid")

	if err := h.scheduleService.DeleteSchedule(r.Context(), scheduleID); err != nil {
		if errors.Is(err, apperrors.ErrSIPScheduleNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSIPScheduleNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete sip schedule", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
