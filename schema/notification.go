package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTutorAccepted = "tutor_accepted"
)

// SessionNotification is an in-app invite shown to the request author
// until it is marked read.
type SessionNotification struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	GigID             uuid.UUID `json:"gig_id" gorm:"type:uuid;not null"`
	RecipientEmail    string    `json:"recipient_email" gorm:"index;not null"`
	NotificationType  string    `json:"notification_type"`
	Message           string    `json:"message"`
	RedirectToSession bool      `json:"redirect_to_session"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_date"`
}
