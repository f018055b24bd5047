package notification

import (
	"context"

	"github.com/campusconnect/campus-scheduler/internal/models"
)

type Repository interface {
	// Create persists with read=false and returns the stored record so
	// the caller can push it over the live channel.
	Create(ctx context.Context, n *models.Notification) error

	ListForReceiver(ctx context.Context, receiverID uint) ([]models.Notification, error)

	// MarkRead and Delete are receiver-scoped; a notification belonging
	// to someone else behaves exactly like a missing one.
	MarkRead(ctx context.Context, id uint, receiverID uint) error
	MarkAllRead(ctx context.Context, receiverID uint) error
	Delete(ctx context.Context, id uint, receiverID uint) error

	UnreadCount(ctx context.Context, receiverID uint) (int64, error)
}
