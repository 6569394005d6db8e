package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	VouchTutorRating   = "tutor_rating"
	VouchStudentRating = "student_rating"
	VouchPeerPoints    = "peer_points"
)

const (
	VouchUniqueGigVoucher = "vouch_unique_gig_voucher"
	VouchUniqueVoucherDay = "vouch_unique_voucher_day"
)

// VouchDateLayout is the calendar day format used for the daily cap.
const VouchDateLayout = "2006-01-02"

// Vouch is an immutable audit record of one reputation award.
type Vouch struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	GigID        uuid.UUID `json:"gig_id" gorm:"type:uuid;not null"`
	VoucherEmail string    `json:"voucher_email" gorm:"not null"`
	VoucheeEmail string    `json:"vouchee_email" gorm:"not null"`
	VouchType    string    `json:"vouch_type" gorm:"not null"`
	Points       int       `json:"points" gorm:"not null"`
	VouchDate    string    `json:"vouch_date" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// VouchDay returns the UTC calendar day of t in VouchDateLayout.
func VouchDay(t time.Time) string {
	return t.UTC().Format(VouchDateLayout)
}
