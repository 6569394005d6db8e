package gig

import (
	"time"

	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/schema"
)

const (
	SessionTypePeer  = "peer"
	SessionTypeTutor = "tutor"
)

// Rules carries the timing and award constants of the session state machine.
// One value is shared by every enforcement point.
type Rules struct {
	EndGate            time.Duration
	PaymentPromptDelay time.Duration
	MinVouchMinutes    int
	VouchPoints        int
}

func DefaultRules() Rules {
	return Rules{
		EndGate:            consts.SESSION_END_GATE,
		PaymentPromptDelay: consts.PAYMENT_PROMPT_DELAY,
		MinVouchMinutes:    consts.DEFAULT_MIN_VOUCH_MINUTES,
		VouchPoints:        consts.VOUCH_POINTS,
	}
}

// WithMinVouchMinutes overrides the vouch threshold when a positive value is given.
func (r Rules) WithMinVouchMinutes(minutes int) Rules {
	if minutes > 0 {
		r.MinVouchMinutes = minutes
	}
	return r
}

// SessionType is decided by the role of whoever accepted the gig, never by
// the help_from filter of the request. It is empty until someone accepts.
func SessionType(responder *schema.User) string {
	switch {
	case responder.IsTutor():
		return SessionTypeTutor
	case responder.IsStudent():
		return SessionTypePeer
	default:
		return ""
	}
}

// CanCreate checks that author may post a help request with the given
// classification.
func CanCreate(author *schema.User, helpFrom, compensation string) error {
	if !author.IsStudent() {
		return ErrOnlyStudentsCanRequest
	}

	switch helpFrom {
	case schema.HelpFromTutor, schema.HelpFromStudent, schema.HelpFromAnyone:
	default:
		return ErrInvalidHelpFrom
	}

	switch compensation {
	case schema.CompensationFree, schema.CompensationPaid, schema.CompensationUndecided:
	default:
		return ErrInvalidCompensation
	}

	return nil
}

// RoleAllowed reports whether a user of the given role may help on req.
func RoleAllowed(req *schema.HelpRequest, user *schema.User) bool {
	switch req.HelpFrom {
	case schema.HelpFromTutor:
		return user.IsTutor()
	case schema.HelpFromStudent:
		return user.IsStudent()
	default:
		return user.IsTutor() || user.IsStudent()
	}
}

// VisibleTo hides requests from users whose role can never accept them.
// Authors always see their own requests.
func VisibleTo(req *schema.HelpRequest, viewer *schema.User) bool {
	if req.AuthorEmail == viewer.Email {
		return true
	}
	return RoleAllowed(req, viewer)
}

// CanAccept checks that user may take req. Acceptance is immediate; there is
// no negotiation step.
func CanAccept(req *schema.HelpRequest, user *schema.User) error {
	if req.AuthorEmail == user.Email {
		return ErrOwnRequest
	}

	if req.Status != schema.HELP_OPEN {
		return ErrRequestNotOpen
	}

	if !RoleAllowed(req, user) {
		return ErrRoleNotAllowed
	}

	return nil
}

// CanCancel checks that actor may withdraw req.
func CanCancel(req *schema.HelpRequest, actor string) error {
	if req.AuthorEmail != actor {
		return ErrOnlyAuthor
	}

	if req.Status != schema.HELP_OPEN {
		return ErrRequestNotOpen
	}

	return nil
}
