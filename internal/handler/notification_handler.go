package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskhub/internal/domain"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	notifications, err := h.notificationService.ListNotifications(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainNotificationsToHTTP(notifications))
}

// CreateNotification - ручная отправка уведомления; приглашение в компанию
// (kind INVITE + company_id) идет через сценарий приглашения целиком
func (h *Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	kind := domain.NotificationKind(req.Kind)
	if kind == domain.KindInvite && req.CompanyID != nil {
		notification, err := h.inviteService.Invite(r.Context(), *req.CompanyID, userID, req.Message)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, domainNotificationToHTTP(notification))
		return
	}

	notification := &domain.Notification{
		UserID:     &userID,
		CompanyID:  req.CompanyID,
		PersonalID: req.PersonalID,
		TaskID:     req.TaskID,
		Kind:       kind,
		Message:    req.Message,
	}
	created, err := h.notificationService.CreateNotification(r.Context(), notification)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainNotificationToHTTP(created))
}

func (h *Handler) GetNotification(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	notificationID, err := pathID(r, "notificationID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	notification, err := h.notificationService.GetNotification(r.Context(), userID, notificationID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainNotificationToHTTP(notification))
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	notificationID, err := pathID(r, "notificationID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.notificationService.DeleteNotification(r.Context(), userID, notificationID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
