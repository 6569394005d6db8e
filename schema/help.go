package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	HELP_OPEN             = "open"
	HELP_IN_SESSION       = "in_session"
	HELP_AWAITING_PAYMENT = "awaiting_payment"
	HELP_COMPLETED        = "completed"
	HELP_CANCELLED        = "cancelled"
)

const (
	CompensationFree      = "free"
	CompensationPaid      = "paid"
	CompensationUndecided = "undecided"
)

const (
	HelpFromTutor   = "tutor"
	HelpFromStudent = "student"
	HelpFromAnyone  = "anyone"
)

// HelpRequest is a gig: a request for help that turns into a live session
// once someone accepts it.
type HelpRequest struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AuthorEmail string    `json:"author_email" gorm:"index;not null"`
	AuthorName  string    `json:"author_name"`

	ResponderEmail *string `json:"responder_email" gorm:"index"`
	ResponderName  *string `json:"responder_name"`

	Title            string `json:"title"`
	Description      string `json:"description"`
	Subject          string `json:"subject" gorm:"index"`
	CompensationType string `json:"compensation_type" sql:"default:'undecided'"`
	OfferedPrice     string `json:"offered_price"`
	HelpFrom         string `json:"help_from" sql:"default:'anyone'"`

	Status string `json:"status" gorm:"index" sql:"default:'open'"`

	MeetingLink            string     `json:"meeting_link"`
	LinkConfirmed          bool       `json:"link_confirmed"`
	SessionForceStarted    bool       `json:"session_force_started"`
	SessionStartTime       *time.Time `json:"session_start_time"`
	SessionEndTime         *time.Time `json:"session_end_time"`
	SessionDurationMinutes int        `json:"session_duration_minutes"`
	SessionEndedByEmail    string     `json:"session_ended_by_email"`
	SessionEndedByName     string     `json:"session_ended_by_name"`

	PaymentInstructions     string `json:"payment_instructions"`
	PaymentInstructionsSent bool   `json:"payment_instructions_sent"`
	StudentPaid             bool   `json:"student_paid"`
	TutorConfirmedPayment   bool   `json:"tutor_confirmed_payment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsInSession reports whether the gig is live. awaiting_payment is kept as a
// legacy status value and behaves exactly like in_session.
func (h *HelpRequest) IsInSession() bool {
	return h.Status == HELP_IN_SESSION || h.Status == HELP_AWAITING_PAYMENT
}

// IsParticipant reports whether email is the author or the responder.
func (h *HelpRequest) IsParticipant(email string) bool {
	return email != "" && (email == h.AuthorEmail || email == h.Responder())
}

// Responder returns the responder email or an empty string.
func (h *HelpRequest) Responder() string {
	if h.ResponderEmail == nil {
		return ""
	}
	return *h.ResponderEmail
}

func (h *HelpRequest) ResponderDisplayName() string {
	if h.ResponderName == nil {
		return ""
	}
	return *h.ResponderName
}
