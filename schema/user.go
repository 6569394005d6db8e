package schema

import "time"

const (
	UserTypeStudent = "student"
	UserTypeTutor   = "tutor"
)

// User is the canonical, role-bearing identity record. The reputation
// counters are only ever changed by the vouch ledger.
type User struct {
	Email         string    `json:"email" gorm:"primary_key"`
	FullName      string    `json:"full_name"`
	UserType      string    `json:"user_type" gorm:"not null"`
	TutorRating   int       `json:"tutor_rating" gorm:"not null;default:0"`
	StudentRating int       `json:"student_rating" gorm:"not null;default:0"`
	PeerPoints    int       `json:"peer_points" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (u *User) IsTutor() bool {
	return u != nil && u.UserType == UserTypeTutor
}

func (u *User) IsStudent() bool {
	return u != nil && u.UserType == UserTypeStudent
}
