package handlers

import (
	"log/slog"
	"net/http"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/middleware"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// NotificationsHandler serves the authenticated user's notification feed.
// Every operation is scoped to the token's subject.
type NotificationsHandler struct {
	store  storage.NotificationStore
	logger *slog.Logger
}

// NewNotificationsHandler constructs the handler.
func NewNotificationsHandler(store storage.NotificationStore, logger *slog.Logger) *NotificationsHandler {
	return &NotificationsHandler{store: store, logger: logger}
}

// List returns the user's unexpired notifications, newest first.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	notifications, err := h.store.ListNotifications(r.Context(), claims.UserID)
	if err != nil {
		storeError(w, h.logger, err, "notification")
		return
	}
	respond.JSON(w, http.StatusOK, "notifications", notifications)
}

// UnreadCount returns the number of unread, unexpired notifications.
func (h *NotificationsHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	count, err := h.store.CountUnread(r.Context(), claims.UserID)
	if err != nil {
		storeError(w, h.logger, err, "notification")
		return
	}
	respond.JSON(w, http.StatusOK, "unread count", map[string]int{"unread": count})
}

// MarkRead marks one notification as read.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.store.MarkRead(r.Context(), claims.UserID, id); err != nil {
		storeError(w, h.logger, err, "notification")
		return
	}
	respond.JSON(w, http.StatusOK, "marked read", nil)
}

// MarkAllRead marks the user's entire feed as read.
func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	if err := h.store.MarkAllRead(r.Context(), claims.UserID); err != nil {
		storeError(w, h.logger, err, "notification")
		return
	}
	respond.JSON(w, http.StatusOK, "all marked read", nil)
}

// Delete removes one of the user's notifications.
func (h *NotificationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.store.DeleteNotification(r.Context(), claims.UserID, id); err != nil {
		storeError(w, h.logger, err, "notification")
		return
	}
	respond.JSON(w, http.StatusOK, "notification deleted", nil)
}
