package handler

import "net/http"

func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
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

	if err := h.inviteService.AcceptInvite(r.Context(), userID, companyID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
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

	if err := h.inviteService.DeclineInvite(r.Context(), userID, companyID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
