package schema

import "time"

const (
	DirectoryCollection = "public_directory"
)

// DirectoryEntry is the public, denormalized projection of a User kept in
// mongodb for directory and leaderboard reads.
type DirectoryEntry struct {
	UserEmail     string    `json:"user_email" bson:"user_email"`
	UserType      string    `json:"user_type" bson:"user_type"`
	DisplayName   string    `json:"display_name" bson:"display_name"`
	TutorRating   int       `json:"tutor_rating" bson:"tutor_rating"`
	StudentRating int       `json:"student_rating" bson:"student_rating"`
	PeerPoints    int       `json:"peer_points" bson:"peer_points"`
	Reputation    int       `json:"reputation" bson:"reputation"`
	LastActive    time.Time `json:"last_active" bson:"last_active,omitempty"`
	SyncedAt      time.Time `json:"synced_at" bson:"synced_at,omitempty"`
}

// NewDirectoryEntry derives the public entry of u. Presence is not part of
// the canonical record and is left empty.
func NewDirectoryEntry(u *User, syncedAt time.Time) DirectoryEntry {
	return DirectoryEntry{
		UserEmail:     u.Email,
		UserType:      u.UserType,
		DisplayName:   u.FullName,
		TutorRating:   u.TutorRating,
		StudentRating: u.StudentRating,
		PeerPoints:    u.PeerPoints,
		Reputation:    u.TutorRating + u.StudentRating + u.PeerPoints,
		SyncedAt:      syncedAt,
	}
}
