package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/api/response"
	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/service"
	"github.com/hazyfin/family-finance-backend/internal/validation"
)

// MemberHandler handles HTTP requests for family group and member
// management.
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new MemberHandler with the provided service dependency.
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ListMembers handles GET requests for a family group's members.
//
// Endpoint: GET /api/member?familyGroupId={uuid}
// Response: 200 OK with array of Member
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	groupID, err := familyGroupID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	members, err := h.memberService.GetMembers(groupID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveMembers.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, members)
}

// GetMember handles GET requests to retrieve a single member by ID.
//
// Endpoint: GET /api/member/{uuid}
// Response: 200 OK with Member
// Error: 404 Not Found if member not found
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "uuid")

	member, err := h.memberService.GetMember(memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMemberNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveMembers.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, member)
}

// CreateMember handles POST requests to add a member to an existing
// family group.
//
// Endpoint: POST /api/member
// Response: 201 Created with Member
// Error: 400 Bad Request if validation fails, 404 if the group is unknown
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateMemberRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateMember(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFamilyGroupNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFamilyGroupNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create member", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, member)
}

// UpdateMember handles PUT requests to edit a member's display fields.
//
// Endpoint: PUT /api/member/{uuid}
// Response: 200 OK with updated Member
// Error: 404 Not Found if member not found
func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateMemberRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateMember(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	member, err := h.memberService.UpdateMember(r.Context(), memberID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMemberNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update member", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, member)
}

// DeleteMember handles DELETE requests to remove a member. The member's
// transactions are removed by the schema cascade.
//
// Endpoint: DELETE /api/member/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if member not found
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "uuid")

	if err := h.memberService.DeleteMember(r.Context(), memberID); err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMemberNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete member", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
