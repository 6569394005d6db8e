package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/schema"
)

var vouchCounters = map[string]string{
	schema.VouchTutorRating:   "tutor_rating",
	schema.VouchStudentRating: "student_rating",
	schema.VouchPeerPoints:    "peer_points",
}

// HasVouched reports whether voucherEmail already vouched on a gig
func (s *BigGradeStore) HasVouched(helpID, voucherEmail string) (bool, error) {
	var count int
	if err := s.ormDB.Model(&schema.Vouch{}).
		Where("gig_id = ? AND voucher_email = ?", helpID, voucherEmail).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "counting gig vouches")
	}
	return count > 0, nil
}

// HasVouchedOn reports whether voucherEmail already vouched on a calendar day
func (s *BigGradeStore) HasVouchedOn(voucherEmail, day string) (bool, error) {
	var count int
	if err := s.ormDB.Model(&schema.Vouch{}).
		Where("voucher_email = ? AND vouch_date = ?", voucherEmail, day).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "counting daily vouches")
	}
	return count > 0, nil
}

// AwardVouch records a vouch, increments the vouchee's counter and queues a
// directory update, all in one transaction. The unique indexes on the vouch
// table decide concurrent claims: a violation maps to the matching rule error.
func (s *BigGradeStore) AwardVouch(vouch *schema.Vouch) error {
	column, ok := vouchCounters[vouch.VouchType]
	if !ok {
		return gig.ErrInvalidVouchRole
	}

	return s.ormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vouch).Error; err != nil {
			switch uniqueConstraint(err) {
			case schema.VouchUniqueGigVoucher:
				return gig.ErrAlreadyVouched
			case schema.VouchUniqueVoucherDay:
				return gig.ErrDailyVouchLimit
			}
			return errors.Wrap(err, "inserting vouch")
		}

		result := tx.Model(&schema.User{}).
			Where("email = ?", vouch.VoucheeEmail).
			UpdateColumn(column, gorm.Expr(fmt.Sprintf("%s + ?", column), vouch.Points))
		if result.Error != nil {
			return errors.Wrap(result.Error, "incrementing reputation")
		}

		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		vouchID := vouch.ID
		if err := tx.Create(&schema.DirectoryOutbox{
			UserEmail: vouch.VoucheeEmail,
			VouchID:   &vouchID,
		}).Error; err != nil {
			return errors.Wrap(err, "inserting directory outbox")
		}

		return nil
	})
}
