package gig

import (
	"fmt"

	"github.com/biggrade/biggrade-api/schema"
)

// VouchAttempt is everything needed to decide a vouch without touching the store.
type VouchAttempt struct {
	Request   *schema.HelpRequest
	Voucher   string
	Author    *schema.User
	Responder *schema.User

	// AlreadyVouched is true when Voucher has a vouch for this gig.
	AlreadyVouched bool

	// VouchedToday is true when Voucher has a vouch dated today on any gig.
	VouchedToday bool
}

// VouchPlan is the award a successful vouch produces.
type VouchPlan struct {
	VoucheeEmail string
	VouchType    string
	Points       int
}

// PlanVouch applies the eligibility rules in order and routes the award to
// the counter matching the role pair.
func (r Rules) PlanVouch(a VouchAttempt) (*VouchPlan, error) {
	req := a.Request

	if req.Status != schema.HELP_COMPLETED {
		return nil, ErrSessionNotCompleted
	}

	if !req.IsParticipant(a.Voucher) {
		return nil, ErrNotParticipant
	}

	isHelper := a.Voucher == req.Responder()
	if isHelper && a.Responder.IsStudent() {
		return nil, ErrPeerHelperCannotVouch
	}

	if a.AlreadyVouched {
		return nil, ErrAlreadyVouched
	}

	if !r.QualifiesForVouch(req.SessionDurationMinutes) {
		return nil, fmt.Errorf("%w (needs %d+ minutes, lasted %d)", ErrSessionTooShort, r.MinVouchMinutes, req.SessionDurationMinutes)
	}

	if a.VouchedToday {
		return nil, ErrDailyVouchLimit
	}

	plan := &VouchPlan{Points: r.VouchPoints}

	switch {
	case a.Voucher == req.AuthorEmail && a.Author.IsStudent():
		plan.VoucheeEmail = req.Responder()
		switch {
		case a.Responder.IsTutor():
			plan.VouchType = schema.VouchTutorRating
		case a.Responder.IsStudent():
			plan.VouchType = schema.VouchPeerPoints
		}
	case isHelper && a.Responder.IsTutor():
		plan.VoucheeEmail = req.AuthorEmail
		plan.VouchType = schema.VouchStudentRating
	}

	if plan.VoucheeEmail == "" || plan.VouchType == "" {
		return nil, ErrInvalidVouchRole
	}

	return plan, nil
}
