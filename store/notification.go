package store

import (
	"github.com/pkg/errors"

	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/schema"
)

// ListUnreadNotifications returns the unread session invites of a user, newest first
func (s *BigGradeStore) ListUnreadNotifications(email string, limit int) ([]schema.SessionNotification, error) {
	notifications := []schema.SessionNotification{}

	if limit <= 0 || limit > consts.NOTIFICATION_LIST_LIMIT {
		limit = consts.NOTIFICATION_LIST_LIMIT
	}

	if err := s.ormDB.
		Where("recipient_email = ? AND is_read = ?", email, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, errors.Wrap(err, "listing notifications")
	}

	return notifications, nil
}

// MarkNotificationRead marks one of the user's notifications as read
func (s *BigGradeStore) MarkNotificationRead(notificationID, email string) error {
	result := s.ormDB.Model(&schema.SessionNotification{}).
		Where("id = ? AND recipient_email = ?", notificationID, email).
		Update("is_read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "updating notification")
	}

	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
