package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/service"
)

// taskOwner извлекает владельца задачи из пути запроса:
// маршруты компаний несут companyID, личные - personalID
func taskOwner(r *http.Request) (domain.TaskOwner, error) {
	if r.PathValue("companyID") != "" {
		companyID, err := pathID(r, "companyID")
		if err != nil {
			return domain.TaskOwner{}, err
		}
		return domain.CompanyOwner(companyID), nil
	}

	personalID, err := pathID(r, "personalID")
	if err != nil {
		return domain.TaskOwner{}, err
	}
	return domain.PersonalOwner(personalID), nil
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	owner, err := taskOwner(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Owner:       owner,
		CategoryID:  req.CategoryID,
		AssignedTo:  req.AssignedTo,
		Status:      domain.Status(req.Status),
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}

	created, err := h.taskService.CreateTask(r.Context(), currentUser(r), task)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTaskToHTTP(created))
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	owner, err := taskOwner(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), owner)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTasksToHTTP(tasks))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	owner, err := taskOwner(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	taskID, err := pathID(r, "taskID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), owner, taskID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	owner, err := taskOwner(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	taskID, err := pathID(r, "taskID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req TaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	update := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
		AssignedTo:  req.AssignedTo,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		update.Status = &status
	}

	task, err := h.taskService.UpdateTask(r.Context(), owner, taskID, update)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	owner, err := taskOwner(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	taskID, err := pathID(r, "taskID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), owner, taskID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
