package gig

import (
	"time"

	"github.com/biggrade/biggrade-api/schema"
)

// SessionView is what a participant sees of a live or finished session.
type SessionView struct {
	Request          *schema.HelpRequest `json:"request"`
	SessionType      string              `json:"session_type"`
	IsHelper         bool                `json:"is_helper"`
	IsPaidSession    bool                `json:"is_paid_session"`
	PaymentComplete  bool                `json:"payment_complete"`
	CanProceed       bool                `json:"can_proceed"`
	PaymentPromptDue bool                `json:"payment_prompt_due"`
	SecondsUntilEnd  int                 `json:"seconds_until_end"`
	CanEnd           bool                `json:"can_end"`
	MinVouchMinutes  int                 `json:"min_vouch_minutes"`
	QualifiesToVouch bool                `json:"qualifies_to_vouch"`
	HasVouched       bool                `json:"has_vouched"`
	CanVouch         bool                `json:"can_vouch"`
}

// View computes the session view of req for viewer.
func (r Rules) View(req *schema.HelpRequest, viewer string, responder *schema.User, hasVouched bool, now time.Time) SessionView {
	v := SessionView{
		Request:          req,
		SessionType:      SessionType(responder),
		IsHelper:         viewer != "" && viewer == req.Responder(),
		IsPaidSession:    IsPaidSession(req, responder),
		PaymentComplete:  PaymentComplete(req),
		CanProceed:       CanProceed(req, responder),
		MinVouchMinutes:  r.MinVouchMinutes,
		QualifiesToVouch: req.Status == schema.HELP_COMPLETED && r.QualifiesForVouch(req.SessionDurationMinutes),
		HasVouched:       hasVouched,
	}

	if req.IsInSession() {
		v.SecondsUntilEnd = int(r.EndAvailableIn(req, now).Seconds())
		v.CanEnd = r.CanEnd(req, viewer, responder, now) == nil
		v.PaymentPromptDue = v.IsHelper && r.PaymentPromptDue(req, responder, now)
	}

	// peer helpers never vouch; the daily cap is only known at submit time
	v.CanVouch = v.QualifiesToVouch &&
		!hasVouched &&
		req.IsParticipant(viewer) &&
		!(v.IsHelper && v.SessionType == SessionTypePeer)

	return v
}
