package gig

import (
	"net/url"
	"strings"
	"time"

	"github.com/biggrade/biggrade-api/schema"
)

// Elapsed returns the time passed since the session start, or zero when the
// session has not started.
func Elapsed(req *schema.HelpRequest, now time.Time) time.Duration {
	if req.SessionStartTime == nil {
		return 0
	}

	d := now.Sub(*req.SessionStartTime)
	if d < 0 {
		return 0
	}
	return d
}

// DurationMinutes is the floor of the elapsed whole minutes between start and end.
func DurationMinutes(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return int(ms / 60000)
}

// QualifiesForVouch reports whether a session of the given length unlocks vouching.
func (r Rules) QualifiesForVouch(minutes int) bool {
	return minutes >= r.MinVouchMinutes
}

// EndAvailableIn returns how long until the session may be ended. The
// countdown only runs once the meeting link is confirmed; before that the
// full gate is returned.
func (r Rules) EndAvailableIn(req *schema.HelpRequest, now time.Time) time.Duration {
	if !req.LinkConfirmed {
		return r.EndGate
	}

	remaining := r.EndGate - Elapsed(req, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanShareLink checks that actor may share link on req.
func CanShareLink(req *schema.HelpRequest, actor, link string) error {
	if !req.IsInSession() {
		return ErrNotInSession
	}

	if req.Responder() != actor {
		return ErrOnlyHelper
	}

	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidMeetingLink
	}

	return nil
}

// CanConfirmLink checks that actor may confirm the shared meeting link.
func CanConfirmLink(req *schema.HelpRequest, actor string) error {
	if !req.IsInSession() {
		return ErrNotInSession
	}

	if req.AuthorEmail != actor {
		return ErrOnlyAuthor
	}

	if req.MeetingLink == "" {
		return ErrLinkNotShared
	}

	return nil
}

// CanEnd checks that actor may end the session at now. A session that is
// already completed is not an error here; callers treat a repeated end as a
// no-op.
func (r Rules) CanEnd(req *schema.HelpRequest, actor string, responder *schema.User, now time.Time) error {
	if !req.IsParticipant(actor) {
		return ErrNotParticipant
	}

	if req.Status == schema.HELP_COMPLETED {
		return nil
	}

	if !req.IsInSession() {
		return ErrNotInSession
	}

	if !req.LinkConfirmed {
		return ErrLinkNotConfirmed
	}

	if Elapsed(req, now) < r.EndGate {
		return ErrSessionTooEarly
	}

	if !CanProceed(req, responder) {
		return ErrPaymentPending
	}

	return nil
}

// CanChat checks that actor may post a chat message on req.
func CanChat(req *schema.HelpRequest, actor string, responder *schema.User, text string) error {
	if !req.IsParticipant(actor) {
		return ErrNotParticipant
	}

	if !req.IsInSession() {
		return ErrNotInSession
	}

	if !CanProceed(req, responder) {
		return ErrPaymentPending
	}

	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	return nil
}
