package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/biggrade/biggrade-api/schema"
)

//go:generate mockgen -destination=../mocks/store_core.go -package=mocks github.com/biggrade/biggrade-api/store BigGradeCore

// biggrade main datastore
type BigGradeCore interface {
	Ping() error

	// User
	CreateUser(user *schema.User) error
	GetUser(email string) (*schema.User, error)

	// Help
	CreateHelp(help *schema.HelpRequest) error
	GetHelp(helpID string) (*schema.HelpRequest, error)
	ListHelps(viewer *schema.User, filter HelpFilter) ([]schema.HelpRequest, error)
	ListMyHelps(email string, limit int) ([]schema.HelpRequest, error)
	AcceptHelp(helpID string, responder *schema.User, at time.Time, notice *schema.SessionNotification) (*schema.HelpRequest, error)
	CancelHelp(helpID, authorEmail string) error

	// Session
	ShareMeetingLink(helpID, responderEmail, link string, at time.Time, msg *schema.SessionMessage) (*schema.HelpRequest, error)
	ConfirmMeetingLink(helpID, authorEmail string) (*schema.HelpRequest, error)
	EndSession(helpID string, startedAt time.Time, actor *schema.User, at time.Time, msg *schema.SessionMessage) (*schema.HelpRequest, bool, error)

	// Payment
	SendPaymentInstructions(helpID, responderEmail, instructions string, msg *schema.SessionMessage) (*schema.HelpRequest, error)
	MarkStudentPaid(helpID, authorEmail string, msg *schema.SessionMessage) (*schema.HelpRequest, error)
	ConfirmPaymentReceived(helpID, responderEmail string, msg *schema.SessionMessage) (*schema.HelpRequest, error)

	// Message
	CreateMessage(msg *schema.SessionMessage) error
	ListMessages(helpID string, systemOnly bool, limit int) ([]schema.SessionMessage, error)

	// Notification
	ListUnreadNotifications(email string, limit int) ([]schema.SessionNotification, error)
	MarkNotificationRead(notificationID, email string) error

	// Vouch
	HasVouched(helpID, voucherEmail string) (bool, error)
	HasVouchedOn(voucherEmail, day string) (bool, error)
	AwardVouch(vouch *schema.Vouch) error

	// Directory outbox
	PendingDirectoryUpdates(email string, limit int) ([]schema.DirectoryOutbox, error)
	MarkDirectoryUpdated(ids []uuid.UUID, at time.Time) error
}

// BigGradeStore is an implementation of BigGradeCore
type BigGradeStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewBigGradeStore(ormDB *gorm.DB, mongo MongoStore) *BigGradeStore {
	return &BigGradeStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *BigGradeStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}

	if s.mongo != nil {
		return s.mongo.Ping()
	}

	return nil
}
