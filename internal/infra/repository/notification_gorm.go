package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/notification"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) ListForReceiver(
	ctx context.Context,
	receiverID uint,
) ([]models.Notification, error) {

	var notifications []models.Notification
	if err := r.db.WithContext(ctx).
		Preload("Sender.Profile").
		Preload("Event").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	id uint,
	receiverID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("is_read", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	receiverID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Update("is_read", true).Error
}

func (r *NotificationGormRepository) Delete(
	ctx context.Context,
	id uint,
	receiverID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Delete(&models.Notification{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationGormRepository) UnreadCount(
	ctx context.Context,
	receiverID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*NotificationGormRepository)(nil)
