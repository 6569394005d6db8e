package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: "account not found",
		1102: store.ErrAccountTaken.Error(),

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrTransitionConflict.Error(),
		1202: store.ErrNotificationNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1101)

	errorRequestNotExist = errorJSON(1200)
)

// ruleError binds a domain error to its response code and http status
type ruleError struct {
	err    error
	code   int64
	status int
}

// ruleErrors lists every error a client can act on. The response message is
// the error text itself so the failing rule is named verbatim.
var ruleErrors = []ruleError{
	{store.ErrUserNotFound, 1101, http.StatusNotFound},
	{store.ErrAccountTaken, 1102, http.StatusForbidden},
	{store.ErrRequestNotExist, 1200, http.StatusNotFound},
	{store.ErrTransitionConflict, 1201, http.StatusConflict},
	{store.ErrNotificationNotFound, 1202, http.StatusNotFound},

	{gig.ErrOnlyStudentsCanRequest, 1300, http.StatusForbidden},
	{gig.ErrInvalidHelpFrom, 1301, http.StatusBadRequest},
	{gig.ErrInvalidCompensation, 1302, http.StatusBadRequest},
	{gig.ErrOwnRequest, 1303, http.StatusForbidden},
	{gig.ErrRequestNotOpen, 1304, http.StatusConflict},
	{gig.ErrRoleNotAllowed, 1305, http.StatusForbidden},

	{gig.ErrNotParticipant, 1400, http.StatusForbidden},
	{gig.ErrNotInSession, 1401, http.StatusConflict},
	{gig.ErrOnlyHelper, 1402, http.StatusForbidden},
	{gig.ErrOnlyAuthor, 1403, http.StatusForbidden},
	{gig.ErrInvalidMeetingLink, 1404, http.StatusBadRequest},
	{gig.ErrLinkNotShared, 1405, http.StatusConflict},
	{gig.ErrLinkNotConfirmed, 1406, http.StatusConflict},
	{gig.ErrSessionTooEarly, 1407, http.StatusConflict},
	{gig.ErrEmptyMessage, 1408, http.StatusBadRequest},

	{gig.ErrNotPaidSession, 1500, http.StatusBadRequest},
	{gig.ErrPaymentPending, 1501, http.StatusForbidden},
	{gig.ErrEmptyInstructions, 1502, http.StatusBadRequest},
	{gig.ErrInstructionsAlreadySent, 1503, http.StatusConflict},
	{gig.ErrInstructionsNotSent, 1504, http.StatusConflict},
	{gig.ErrStudentNotPaid, 1505, http.StatusConflict},

	{gig.ErrSessionNotCompleted, 1600, http.StatusConflict},
	{gig.ErrAlreadyVouched, 1601, http.StatusConflict},
	{gig.ErrSessionTooShort, 1602, http.StatusConflict},
	{gig.ErrDailyVouchLimit, 1603, http.StatusConflict},
	{gig.ErrPeerHelperCannotVouch, 1604, http.StatusForbidden},
	{gig.ErrInvalidVouchRole, 1605, http.StatusBadRequest},
}

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// abortWithError responds with the code of a known domain error and falls
// back to an internal server error for anything else
func abortWithError(c *gin.Context, err error) {
	for _, r := range ruleErrors {
		if errors.Is(err, r.err) {
			abortWithEncoding(c, r.status, ErrorResponse{
				Code:    r.code,
				Message: err.Error(),
			})
			return
		}
	}

	log.WithError(err).Error("unexpected error")
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}
