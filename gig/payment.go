package gig

import (
	"strings"
	"time"

	"github.com/biggrade/biggrade-api/schema"
)

// IsPaidSession reports whether the payment gate applies. Only a tutor can
// charge; peer sessions never carry a payment obligation.
func IsPaidSession(req *schema.HelpRequest, responder *schema.User) bool {
	return req.CompensationType == schema.CompensationPaid && responder.IsTutor()
}

// PaymentComplete reports whether both parties confirmed the payment.
func PaymentComplete(req *schema.HelpRequest) bool {
	return req.StudentPaid && req.TutorConfirmedPayment
}

// CanProceed is false while a paid tutor session waits for payment.
func CanProceed(req *schema.HelpRequest, responder *schema.User) bool {
	return !IsPaidSession(req, responder) || PaymentComplete(req)
}

// PaymentPromptDue reports whether the helper must now be asked for payment
// instructions.
func (r Rules) PaymentPromptDue(req *schema.HelpRequest, responder *schema.User, now time.Time) bool {
	return req.IsInSession() &&
		req.LinkConfirmed &&
		IsPaidSession(req, responder) &&
		!req.PaymentInstructionsSent &&
		Elapsed(req, now) >= r.PaymentPromptDelay
}

// CanSendInstructions checks that actor may send payment instructions.
func CanSendInstructions(req *schema.HelpRequest, actor string, responder *schema.User, instructions string) error {
	if !req.IsInSession() {
		return ErrNotInSession
	}

	if req.Responder() != actor {
		return ErrOnlyHelper
	}

	if !IsPaidSession(req, responder) {
		return ErrNotPaidSession
	}

	if req.PaymentInstructionsSent {
		return ErrInstructionsAlreadySent
	}

	if strings.TrimSpace(instructions) == "" {
		return ErrEmptyInstructions
	}

	return nil
}

// CanMarkPaid checks that actor may declare the payment sent.
func CanMarkPaid(req *schema.HelpRequest, actor string, responder *schema.User) error {
	if !req.IsInSession() {
		return ErrNotInSession
	}

	if req.AuthorEmail != actor {
		return ErrOnlyAuthor
	}

	if !IsPaidSession(req, responder) {
		return ErrNotPaidSession
	}

	if !req.PaymentInstructionsSent {
		return ErrInstructionsNotSent
	}

	return nil
}

// CanConfirmPayment checks that actor may confirm the payment was received.
func CanConfirmPayment(req *schema.HelpRequest, actor string, responder *schema.User) error {
	if !req.IsInSession() {
		return ErrNotInSession
	}

	if req.Responder() != actor {
		return ErrOnlyHelper
	}

	if !IsPaidSession(req, responder) {
		return ErrNotPaidSession
	}

	if !req.StudentPaid {
		return ErrStudentNotPaid
	}

	return nil
}
