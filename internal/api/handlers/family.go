package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/api/response"
	"github.com/hazyfin/family-finance-backend/internal/apperrors"
	"github.com/hazyfin/family-finance-backend/internal/service"
	"github.com/hazyfin/family-finance-backend/internal/validation"
)

// FamilyHandler handles HTTP requests for family group creation and the
// invite/join flow.
type FamilyHandler struct {
	memberService *service.MemberService
	familyService *service.FamilyService
}

// NewFamilyHandler creates a new FamilyHandler with the provided service dependencies.
func NewFamilyHandler(memberService *service.MemberService, familyService *service.FamilyService) *FamilyHandler {
	return &FamilyHandler{
		memberService: memberService,
		familyService: familyService,
	}
}

// CreateFamilyGroup handles POST requests to create a family group and
// its founding member in one step.
//
// Endpoint: POST /api/family
// Response: 201 Created with {group, founder}
// Error: 400 Bad Request if validation fails
func (h *FamilyHandler) CreateFamilyGroup(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFamilyGroupRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "name is required")
		return
	}
	founderName := strings.TrimSpace(req.FounderName)
	if founderName == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "founderName is required")
		return
	}

	group, founder, err := h.memberService.CreateFamilyGroup(r.Context(), req, founderName)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create family group", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, map[string]any{
		"group":   group,
		"founder": founder,
	})
}

// Invite handles POST requests to issue an invite token for a family
// group. Returns 503 when no invite key is configured.
//
// Endpoint: POST /api/family/invite (API key required)
// Response: 200 OK with {token}
func (h *FamilyHandler) Invite(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.InviteRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUUID(req.FamilyGroupID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid family group", err.Error())
		return
	}

	if !h.familyService.Enabled() {
		response.RespondError(w, http.StatusServiceUnavailable, "invites disabled", "no invite token key configured")
		return
	}

	token, err := h.familyService.IssueInvite(req.FamilyGroupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFamilyGroupNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFamilyGroupNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to issue invite", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Join handles POST requests to redeem an invite token and join the
// family group it names.
//
// Endpoint: POST /api/family/join
// Response: 201 Created with Member
// Error: 401 Unauthorized on an invalid or expired token
func (h *FamilyHandler) Join(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.JoinRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateJoin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	member, err := h.familyService.Join(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInviteToken) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidInviteToken.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrFamilyGroupNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFamilyGroupNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to join family group", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, member)
}
