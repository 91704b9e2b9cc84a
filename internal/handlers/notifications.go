package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type notificationStore interface {
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	ListByUser(ctx context.Context, userID *int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID *int64) (int, error)
	MarkRead(ctx context.Context, id int64, userID *int64) error
	MarkAllRead(ctx context.Context, userID *int64) error
}

type createNotificationRequest struct {
	UserID *int64  `json:"user_id"`
	Title  string  `json:"title" binding:"required"`
	Body   *string `json:"body"`
	Type   *string `json:"type"`
}

func (h HandlerSet) CreateNotification(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "title is required", "validation_failed")
		return
	}

	n := models.Notification{
		UserID: booking.OwnerID(principalID(c), req.UserID),
		Title:  req.Title,
		Body:   req.Body,
		Type:   req.Type,
	}

	created, err := h.notifications.Create(c.Request.Context(), n)
	if err != nil {
		h.respondInternal(c, "Failed to create notification", err)
		return
	}
	respondData(c, http.StatusCreated, "Notification created successfully", created)
}

func (h HandlerSet) ListNotifications(c *gin.Context) {
	notifications, err := h.notifications.ListByUser(c.Request.Context(), principalID(c))
	if err != nil {
		h.respondInternal(c, "Failed to fetch notifications", err)
		return
	}
	respondData(c, http.StatusOK, "Notifications fetched successfully", notifications)
}

func (h HandlerSet) CheckNotifications(c *gin.Context) {
	count, err := h.notifications.UnreadCount(c.Request.Context(), principalID(c))
	if err != nil {
		h.respondInternal(c, "Failed to check notifications", err)
		return
	}
	respondData(c, http.StatusOK, "Unread count fetched successfully", gin.H{"unread": count})
}

func (h HandlerSet) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context(), principalID(c)); err != nil {
		h.respondInternal(c, "Failed to mark notifications read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h HandlerSet) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid notification id", "validation_failed")
		return
	}

	err := h.notifications.MarkRead(c.Request.Context(), id, principalID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			respondError(c, http.StatusNotFound, "Notification not found", "not_found")
			return
		}
		h.respondInternal(c, "Failed to mark notification read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
