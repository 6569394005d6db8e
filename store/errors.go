package store

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	ErrRequestNotExist      = fmt.Errorf("the request is either solved or not open for you")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrAccountTaken         = fmt.Errorf("the account has been set up already")
	ErrNotificationNotFound = fmt.Errorf("notification not found")
	ErrTransitionConflict   = fmt.Errorf("the session changed in the meantime, reload and try again")

	ErrDirectoryEntryNotFound = fmt.Errorf("directory entry not found")
)

// errNoRows is returned by a conditional update that matched nothing.
var errNoRows = fmt.Errorf("no rows affected")

const uniqueViolation = "23505"

// uniqueConstraint returns the violated constraint name of a postgres
// unique violation, or an empty string for any other error.
func uniqueConstraint(err error) string {
	pqErr, ok := errors.Cause(err).(*pq.Error)
	if !ok || pqErr.Code != uniqueViolation {
		return ""
	}
	return pqErr.Constraint
}
