package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeUser   = "user"
	MessageTypeSystem = "system"

	SystemSenderEmail = "system"
	SystemSenderName  = "System"
)

// SessionMessage is a chat line scoped to one gig.
type SessionMessage struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	GigID       uuid.UUID `json:"gig_id" gorm:"type:uuid;index;not null"`
	SenderEmail string    `json:"sender_email"`
	SenderName  string    `json:"sender_name"`
	Message     string    `json:"message" gorm:"type:text"`
	MessageType string    `json:"message_type" sql:"default:'user'"`
	CreatedAt   time.Time `json:"created_date" gorm:"index"`
}

func NewSystemMessage(gigID uuid.UUID, text string) *SessionMessage {
	return &SessionMessage{
		GigID:       gigID,
		SenderEmail: SystemSenderEmail,
		SenderName:  SystemSenderName,
		Message:     text,
		MessageType: MessageTypeSystem,
	}
}
