package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	personalID, err := pathID(r, "personalID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), personalID, req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainCategoryToHTTP(category))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	personalID, err := pathID(r, "personalID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	categories, err := h.categoryService.ListCategories(r.Context(), personalID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, domainCategoryToHTTP(category))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCategoryToHTTP(category))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	category, err := h.categoryService.RenameCategory(r.Context(), categoryID, req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCategoryToHTTP(category))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), categoryID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
