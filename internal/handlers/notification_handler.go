package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/notification"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/httpresp"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type NotificationHandler struct {
	repo domain.Repository
}

func NewNotificationHandler(repo domain.Repository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

type notificationView struct {
	ID        uint   `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
	Sender    gin.H  `json:"sender"`
	Event     gin.H  `json:"event"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	notifications, err := h.repo.ListForReceiver(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Could not load notifications.")
		return
	}

	unread, err := h.repo.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_count_notifications", "Could not load notifications.")
		return
	}

	views := make([]notificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, formatNotification(&notifications[i]))
	}

	httpresp.OK(c, gin.H{
		"notifications": views,
		"unread_count":  unread,
	})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	count, err := h.repo.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_count_notifications", "Could not load notifications.")
		return
	}

	httpresp.OK(c, gin.H{"count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid notification id.")
		return
	}

	if err := h.repo.MarkRead(c.Request.Context(), uint(id), userID); err != nil {
		httperr.NotFound(c, "not_found", "Notification not found.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.repo.MarkAllRead(c.Request.Context(), userID); err != nil {
		httperr.Internal(c, "failed_to_mark_read", "Could not update notifications.")
		return
	}

	httpresp.OK(c, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid notification id.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id), userID); err != nil {
		httperr.NotFound(c, "not_found", "Notification not found.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Notification deleted"})
}

func formatNotification(n *models.Notification) notificationView {
	v := notificationView{
		ID:        n.ID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Sender: gin.H{
			"id":   n.SenderID,
			"name": n.Sender.DisplayName(),
		},
	}

	if n.Event != nil {
		v.Event = gin.H{
			"id":           n.Event.ID,
			"title":        n.Event.Title,
			"status":       n.Event.Status,
			"meeting_link": n.Event.MeetingLink,
		}
	}

	return v
}
