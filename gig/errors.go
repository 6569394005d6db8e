package gig

import "errors"

// Every rule has its own error so that a rejected action tells the user
// exactly which rule blocked it.
var (
	ErrOnlyStudentsCanRequest = errors.New("only students can post help requests")
	ErrInvalidHelpFrom        = errors.New("help_from must be one of tutor, student or anyone")
	ErrInvalidCompensation    = errors.New("compensation_type must be one of free, paid or undecided")

	ErrOwnRequest     = errors.New("you cannot accept your own request")
	ErrRequestNotOpen = errors.New("this request is no longer open")
	ErrRoleNotAllowed = errors.New("this request is restricted to a different type of helper")

	ErrNotParticipant     = errors.New("you are not a participant of this session")
	ErrNotInSession       = errors.New("the session is not in progress")
	ErrOnlyHelper         = errors.New("only the helper can do this")
	ErrOnlyAuthor         = errors.New("only the student who posted the request can do this")
	ErrInvalidMeetingLink = errors.New("the meeting link must be an http or https url")
	ErrLinkNotShared      = errors.New("no meeting link has been shared yet")
	ErrLinkNotConfirmed   = errors.New("the student has not confirmed the meeting link yet")
	ErrSessionTooEarly    = errors.New("you must wait 30 seconds before ending the session")
	ErrEmptyMessage       = errors.New("message cannot be empty")

	ErrNotPaidSession          = errors.New("this session does not require payment")
	ErrPaymentPending          = errors.New("payment must be confirmed by both parties before the session can proceed")
	ErrEmptyInstructions       = errors.New("payment instructions cannot be empty")
	ErrInstructionsAlreadySent = errors.New("payment instructions have already been sent")
	ErrInstructionsNotSent     = errors.New("the helper has not sent payment instructions yet")
	ErrStudentNotPaid          = errors.New("the student has not marked the payment as sent yet")

	ErrSessionNotCompleted   = errors.New("vouching opens once the session is completed")
	ErrAlreadyVouched        = errors.New("you have already vouched for this session")
	ErrSessionTooShort       = errors.New("cannot vouch: session was too short")
	ErrDailyVouchLimit       = errors.New("you've already vouched someone today, come back tomorrow")
	ErrPeerHelperCannotVouch = errors.New("peer helpers cannot vouch students, only students can vouch their peer helpers")
	ErrInvalidVouchRole      = errors.New("invalid vouch scenario: no vouch type matches these user types")
)
