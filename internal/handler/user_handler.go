package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskhub/internal/service"
)

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) GetUserCompanies(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetUserCompanies(r.Context(), currentUser(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := UserCompaniesResponse{}
	if result.AdminOf != nil {
		company := domainCompanyToHTTP(result.AdminOf)
		resp.AdminOf = &company
	}
	if result.MemberOf != nil {
		company := domainCompanyToHTTP(result.MemberOf)
		resp.MemberOf = &company
	}
	if result.Personal != nil {
		personal := domainPersonalToHTTP(result.Personal)
		resp.Personal = &personal
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetAssignedTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	tasks, err := h.taskService.ListAssignedTo(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTasksToHTTP(tasks))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context(), currentUser(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUsersToHTTP(users))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), currentUser(r), userID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
