package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), currentUser(r), taskID, req.Text)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainCommentToHTTP(comment))
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	comments, err := h.commentService.ListComments(r.Context(), taskID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp = append(resp, domainCommentToHTTP(comment))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	commentID, err := pathID(r, "commentID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), currentUser(r), taskID, commentID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
