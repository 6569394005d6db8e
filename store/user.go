package store

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/biggrade/biggrade-api/schema"
)

// CreateUser registers a canonical user record. A user is created once, so
// the role chosen at setup never changes.
func (s *BigGradeStore) CreateUser(user *schema.User) error {
	if err := s.ormDB.Create(user).Error; err != nil {
		if uniqueConstraint(err) != "" {
			return ErrAccountTaken
		}
		return errors.Wrap(err, "inserting user")
	}
	return nil
}

// GetUser returns the canonical user of a given email
func (s *BigGradeStore) GetUser(email string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("email = ?", email).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "querying user")
	}
	return &u, nil
}
