package notifications

import (
	"time"

	"marca/internal/storage"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func (r *NotificationRepository) Create(notification *Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(notification).Error
}

func (r *NotificationRepository) ListByUser(
	userID uuid.UUID,
	limit, offset int,
) ([]*Notification, error) {
	notifications := make([]*Notification, 0)

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error

	return notifications, err
}

func (r *NotificationRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}

func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error

	return count, err
}

// MarkRead only touches the caller's own rows, so a guessed id cannot mark
// someone else's notification.
func (r *NotificationRepository) MarkRead(userID, notificationID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)

	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) error {
	return storage.GetDb().
		Model(&Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) DeleteByArtist(artistID uuid.UUID) error {
	return storage.GetDb().
		Where("artist_id = ?", artistID).
		Delete(&Notification{}).Error
}
