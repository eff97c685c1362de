package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskhub/internal/domain"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	members, err := h.membershipService.ListMembers(r.Context(), companyID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	// бесплатный тариф ограничен по числу участников
	ok, err := h.membershipService.IsWithinUserLimit(r.Context(), companyID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if !ok {
		h.handleError(w, domain.NewInvalidStateError("company user limit reached"))
		return
	}

	if err := h.membershipService.AddMember(r.Context(), companyID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.membershipService.RemoveMember(r.Context(), companyID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
