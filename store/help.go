package store

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/schema"
)

var liveStatuses = []string{schema.HELP_IN_SESSION, schema.HELP_AWAITING_PAYMENT}

// HelpFilter narrows the open request listing
type HelpFilter struct {
	Compensation string
	Subject      string
	Limit        int
}

// CreateHelp inserts a new open help request
func (s *BigGradeStore) CreateHelp(help *schema.HelpRequest) error {
	help.Status = schema.HELP_OPEN
	if err := s.ormDB.Create(help).Error; err != nil {
		return errors.Wrap(err, "inserting help request")
	}
	return nil
}

func (s *BigGradeStore) GetHelp(helpID string) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	if err := s.ormDB.Where("id = ?", helpID).First(&help).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, errors.Wrap(err, "querying help request")
	}

	return &help, nil
}

// ListHelps returns open requests, newest first. Requests restricted to a
// role the viewer does not have are left out, except the viewer's own.
func (s *BigGradeStore) ListHelps(viewer *schema.User, filter HelpFilter) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	query := s.ormDB.Where("status = ?", schema.HELP_OPEN)
	if viewer != nil {
		query = query.Where("help_from IN (?) OR author_email = ?",
			[]string{schema.HelpFromAnyone, viewer.UserType}, viewer.Email)
	}
	if filter.Compensation != "" {
		query = query.Where("compensation_type = ?", filter.Compensation)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}

	limit := filter.Limit
	if limit <= 0 || limit > consts.REQUEST_LIST_LIMIT {
		limit = consts.REQUEST_LIST_LIMIT
	}

	if err := query.Order("created_at DESC").Limit(limit).Find(&helps).Error; err != nil {
		return nil, errors.Wrap(err, "listing help requests")
	}

	return helps, nil
}

// ListMyHelps returns the gigs a user posted or took, newest first
func (s *BigGradeStore) ListMyHelps(email string, limit int) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	if limit <= 0 || limit > consts.REQUEST_LIST_LIMIT {
		limit = consts.REQUEST_LIST_LIMIT
	}

	if err := s.ormDB.
		Where("author_email = ? OR responder_email = ?", email, email).
		Order("created_at DESC").
		Limit(limit).
		Find(&helps).Error; err != nil {
		return nil, errors.Wrap(err, "listing own help requests")
	}

	return helps, nil
}

// AcceptHelp moves a request from `open` to `in_session` and records the
// responder. The update only applies while the request is still open, the
// responder is not the author and the responder's role is allowed, so only
// one of two concurrent acceptances can win; the loser gets the rule it now
// breaks. The author notification is stored in the same transaction.
func (s *BigGradeStore) AcceptHelp(helpID string, responder *schema.User, at time.Time, notice *schema.SessionNotification) (*schema.HelpRequest, error) {
	err := s.transition(helpID,
		"status = ? AND author_email <> ? AND help_from IN (?)",
		[]interface{}{schema.HELP_OPEN, responder.Email, []string{schema.HelpFromAnyone, responder.UserType}},
		map[string]interface{}{
			"status":                schema.HELP_IN_SESSION,
			"responder_email":       responder.Email,
			"responder_name":        responder.FullName,
			"session_start_time":    at,
			"session_force_started": true,
		},
		nil, notice)
	if err == errNoRows {
		return nil, s.acceptMiss(helpID, responder)
	}
	if err != nil {
		return nil, err
	}

	return s.GetHelp(helpID)
}

// acceptMiss reloads a request an acceptance did not match and names the
// rule that blocked it
func (s *BigGradeStore) acceptMiss(helpID string, responder *schema.User) error {
	help, err := s.GetHelp(helpID)
	if err != nil {
		return err
	}

	if err := gig.CanAccept(help, responder); err != nil {
		return err
	}
	return ErrTransitionConflict
}

// CancelHelp withdraws a request that nobody has accepted yet
func (s *BigGradeStore) CancelHelp(helpID, authorEmail string) error {
	err := s.transition(helpID,
		"status = ? AND author_email = ?",
		[]interface{}{schema.HELP_OPEN, authorEmail},
		map[string]interface{}{"status": schema.HELP_CANCELLED},
		nil, nil)
	if err == errNoRows {
		return ErrRequestNotExist
	}
	return err
}

// transition applies a conditional update on one help request. When the
// update matched, msg and notice are stored in the same transaction.
func (s *BigGradeStore) transition(helpID, where string, args []interface{}, updates map[string]interface{},
	msg *schema.SessionMessage, notice *schema.SessionNotification) error {
	return s.ormDB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.HelpRequest{}).
			Where("id = ?", helpID).
			Where(where, args...).
			Updates(updates)
		if result.Error != nil {
			return errors.Wrap(result.Error, "updating help request")
		}

		if result.RowsAffected == 0 {
			return errNoRows
		}

		if msg != nil {
			if err := tx.Create(msg).Error; err != nil {
				return errors.Wrap(err, "inserting system message")
			}
		}

		if notice != nil {
			if err := tx.Create(notice).Error; err != nil {
				return errors.Wrap(err, "inserting notification")
			}
		}

		return nil
	})
}
