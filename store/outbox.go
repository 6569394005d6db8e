package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/biggrade/biggrade-api/schema"
)

// PendingDirectoryUpdates returns unprocessed outbox rows, oldest first. An
// empty email returns rows of every user.
func (s *BigGradeStore) PendingDirectoryUpdates(email string, limit int) ([]schema.DirectoryOutbox, error) {
	rows := []schema.DirectoryOutbox{}

	query := s.ormDB.Where("processed_at IS NULL")
	if email != "" {
		query = query.Where("user_email = ?", email)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("created_at").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "listing directory outbox")
	}

	return rows, nil
}

// MarkDirectoryUpdated marks outbox rows as projected
func (s *BigGradeStore) MarkDirectoryUpdated(ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	if err := s.ormDB.Model(&schema.DirectoryOutbox{}).
		Where("id IN (?) AND processed_at IS NULL", keys).
		UpdateColumn("processed_at", at).Error; err != nil {
		return errors.Wrap(err, "marking directory outbox")
	}

	return nil
}
