package store

import (
	"time"

	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/schema"
)

// ShareMeetingLink stores the helper's meeting link and restarts the session
// clock. A new link always needs a new confirmation from the student.
func (s *BigGradeStore) ShareMeetingLink(helpID, responderEmail, link string, at time.Time, msg *schema.SessionMessage) (*schema.HelpRequest, error) {
	err := s.transition(helpID,
		"status IN (?) AND responder_email = ?",
		[]interface{}{liveStatuses, responderEmail},
		map[string]interface{}{
			"meeting_link":       link,
			"link_confirmed":     false,
			"session_start_time": at,
		},
		msg, nil)
	if err == errNoRows {
		return nil, ErrTransitionConflict
	}
	if err != nil {
		return nil, err
	}

	return s.GetHelp(helpID)
}

// ConfirmMeetingLink records that the student joined through the shared link
func (s *BigGradeStore) ConfirmMeetingLink(helpID, authorEmail string) (*schema.HelpRequest, error) {
	err := s.transition(helpID,
		"status IN (?) AND author_email = ? AND meeting_link <> ''",
		[]interface{}{liveStatuses, authorEmail},
		map[string]interface{}{"link_confirmed": true},
		nil, nil)
	if err == errNoRows {
		return nil, ErrTransitionConflict
	}
	if err != nil {
		return nil, err
	}

	return s.GetHelp(helpID)
}

// EndSession completes a live session. startedAt pins the session start the
// caller validated against, so a link shared in the meantime makes the update
// miss. Ending a session that is already completed returns the stored record
// and false.
func (s *BigGradeStore) EndSession(helpID string, startedAt time.Time, actor *schema.User, at time.Time, msg *schema.SessionMessage) (*schema.HelpRequest, bool, error) {
	err := s.transition(helpID,
		"status IN (?) AND session_start_time = ? AND link_confirmed = ? AND (author_email = ? OR responder_email = ?)",
		[]interface{}{liveStatuses, startedAt, true, actor.Email, actor.Email},
		map[string]interface{}{
			"status":                   schema.HELP_COMPLETED,
			"session_end_time":         at,
			"session_duration_minutes": gig.DurationMinutes(startedAt, at),
			"session_ended_by_email":   actor.Email,
			"session_ended_by_name":    actor.FullName,
		},
		msg, nil)

	switch err {
	case nil:
		help, err := s.GetHelp(helpID)
		return help, true, err
	case errNoRows:
		help, err := s.GetHelp(helpID)
		if err != nil {
			return nil, false, err
		}
		if help.Status == schema.HELP_COMPLETED {
			return help, false, nil
		}
		return nil, false, ErrTransitionConflict
	default:
		return nil, false, err
	}
}
