package gig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biggrade/biggrade-api/schema"
)

func TestPlanVouchRouting(t *testing.T) {
	r := DefaultRules()

	t.Run("student vouches tutor", func(t *testing.T) {
		plan, err := r.PlanVouch(VouchAttempt{
			Request:   completedRequest(tutor, 4),
			Voucher:   student.Email,
			Author:    student,
			Responder: tutor,
		})
		assert.NoError(t, err)
		assert.Equal(t, &VouchPlan{VoucheeEmail: tutor.Email, VouchType: schema.VouchTutorRating, Points: 5}, plan)
	})

	t.Run("tutor vouches student", func(t *testing.T) {
		plan, err := r.PlanVouch(VouchAttempt{
			Request:   completedRequest(tutor, 4),
			Voucher:   tutor.Email,
			Author:    student,
			Responder: tutor,
		})
		assert.NoError(t, err)
		assert.Equal(t, &VouchPlan{VoucheeEmail: student.Email, VouchType: schema.VouchStudentRating, Points: 5}, plan)
	})

	t.Run("student vouches peer helper", func(t *testing.T) {
		plan, err := r.PlanVouch(VouchAttempt{
			Request:   completedRequest(peer, 12),
			Voucher:   student.Email,
			Author:    student,
			Responder: peer,
		})
		assert.NoError(t, err)
		assert.Equal(t, &VouchPlan{VoucheeEmail: peer.Email, VouchType: schema.VouchPeerPoints, Points: 5}, plan)
	})

	t.Run("peer helper cannot vouch", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:   completedRequest(peer, 12),
			Voucher:   peer.Email,
			Author:    student,
			Responder: peer,
		})
		assert.Equal(t, ErrPeerHelperCannotVouch, err)
	})
}

func TestPlanVouchRejections(t *testing.T) {
	r := DefaultRules()

	t.Run("session not completed", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:   liveRequest(tutor, schema.CompensationFree),
			Voucher:   student.Email,
			Author:    student,
			Responder: tutor,
		})
		assert.Equal(t, ErrSessionNotCompleted, err)
	})

	t.Run("outsider", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:   completedRequest(tutor, 4),
			Voucher:   peer.Email,
			Author:    student,
			Responder: tutor,
		})
		assert.Equal(t, ErrNotParticipant, err)
	})

	t.Run("too short carries the threshold", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:   completedRequest(tutor, 2),
			Voucher:   student.Email,
			Author:    student,
			Responder: tutor,
		})
		assert.True(t, errorsIs(err, ErrSessionTooShort))
		assert.Contains(t, err.Error(), "needs 3+ minutes, lasted 2")
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		_, err := r.WithMinVouchMinutes(10).PlanVouch(VouchAttempt{
			Request:   completedRequest(tutor, 4),
			Voucher:   student.Email,
			Author:    student,
			Responder: tutor,
		})
		assert.True(t, errorsIs(err, ErrSessionTooShort))
	})

	t.Run("already vouched wins over daily limit", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:        completedRequest(tutor, 4),
			Voucher:        student.Email,
			Author:         student,
			Responder:      tutor,
			AlreadyVouched: true,
			VouchedToday:   true,
		})
		assert.Equal(t, ErrAlreadyVouched, err)
	})

	t.Run("too short wins over daily limit", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:      completedRequest(tutor, 1),
			Voucher:      student.Email,
			Author:       student,
			Responder:    tutor,
			VouchedToday: true,
		})
		assert.True(t, errorsIs(err, ErrSessionTooShort))
	})

	t.Run("peer helper rule wins over the other caps", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:        completedRequest(peer, 1),
			Voucher:        peer.Email,
			Author:         student,
			Responder:      peer,
			AlreadyVouched: true,
			VouchedToday:   true,
		})
		assert.Equal(t, ErrPeerHelperCannotVouch, err)
	})

	t.Run("daily limit", func(t *testing.T) {
		_, err := r.PlanVouch(VouchAttempt{
			Request:      completedRequest(tutor, 4),
			Voucher:      student.Email,
			Author:       student,
			Responder:    tutor,
			VouchedToday: true,
		})
		assert.Equal(t, ErrDailyVouchLimit, err)
	})

	t.Run("tutor author has no vouch route", func(t *testing.T) {
		req := completedRequest(tutor, 4)
		req.AuthorEmail = "old@tutors.io"
		_, err := r.PlanVouch(VouchAttempt{
			Request:   req,
			Voucher:   req.AuthorEmail,
			Author:    &schema.User{Email: req.AuthorEmail, UserType: schema.UserTypeTutor},
			Responder: tutor,
		})
		assert.Equal(t, ErrInvalidVouchRole, err)
	})
}
