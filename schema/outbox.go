package schema

import (
	"time"

	"github.com/google/uuid"
)

// DirectoryOutbox marks a user whose public directory entry must be
// re-derived from the canonical user record. Rows are written in the same
// transaction as the counter change they describe.
type DirectoryOutbox struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserEmail   string     `json:"user_email" gorm:"index;not null"`
	VouchID     *uuid.UUID `json:"vouch_id" gorm:"type:uuid"`
	ProcessedAt *time.Time `json:"processed_at" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (DirectoryOutbox) TableName() string { return "directory_outbox" }
