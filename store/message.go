package store

import (
	"github.com/pkg/errors"

	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/schema"
)

// CreateMessage appends a chat line to a gig
func (s *BigGradeStore) CreateMessage(msg *schema.SessionMessage) error {
	if msg.MessageType == "" {
		msg.MessageType = schema.MessageTypeUser
	}

	if err := s.ormDB.Create(msg).Error; err != nil {
		return errors.Wrap(err, "inserting session message")
	}
	return nil
}

// ListMessages returns the latest messages of a gig in chronological order.
// When systemOnly is set, user messages are left out.
func (s *BigGradeStore) ListMessages(helpID string, systemOnly bool, limit int) ([]schema.SessionMessage, error) {
	messages := []schema.SessionMessage{}

	if limit <= 0 || limit > consts.MESSAGE_LIST_LIMIT {
		limit = consts.MESSAGE_LIST_LIMIT
	}

	query := s.ormDB.Where("gig_id = ?", helpID)
	if systemOnly {
		query = query.Where("message_type = ?", schema.MessageTypeSystem)
	}

	if err := query.Order("created_at DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, errors.Wrap(err, "listing session messages")
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
