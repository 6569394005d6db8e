package schema

import (
	"github.com/jinzhu/gorm"
)

// Migrate creates the postgres tables and the unique indexes that enforce
// the vouch ledger caps.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&HelpRequest{},
		&SessionMessage{},
		&SessionNotification{},
		&Vouch{},
		&DirectoryOutbox{},
	).Error; err != nil {
		return err
	}

	if err := db.Model(Vouch{}).
		AddUniqueIndex(VouchUniqueGigVoucher, "gig_id", "voucher_email").Error; err != nil {
		return err
	}

	return db.Model(Vouch{}).
		AddUniqueIndex(VouchUniqueVoucherDay, "voucher_email", "vouch_date").Error
}
