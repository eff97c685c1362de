package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	company, err := h.companyService.CreateCompany(r.Context(), currentUser(r), req.Name, req.Plan, req.AdminID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainCompanyToHTTP(company))
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	details, err := h.companyService.GetCompanyDetails(r.Context(), companyID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, companyDetailsToHTTP(details))
}

func (h *Handler) RenameCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RenameCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	company, err := h.companyService.RenameCompany(r.Context(), companyID, req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCompanyToHTTP(company))
}

func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.companyService.DeleteCompany(r.Context(), companyID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreatePersonalAccount(w http.ResponseWriter, r *http.Request) {
	var req PersonalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	account, err := h.companyService.CreatePersonalAccount(r.Context(), currentUser(r), req.Name, req.AdminID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainPersonalToHTTP(account))
}

func (h *Handler) DeletePersonalAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.DeletePersonalAccount(r.Context(), currentUser(r)); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAllCompanies - сводка для суперпользователя по всем компаниям
func (h *Handler) ListAllCompanies(w http.ResponseWriter, r *http.Request) {
	details, err := h.companyService.ListAllCompanies(r.Context(), currentUser(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := make([]CompanyDetailsResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, companyDetailsToHTTP(d))
	}

	writeJSON(w, http.StatusOK, resp)
}
