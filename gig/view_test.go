package gig

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/biggrade/biggrade-api/schema"
)

func errorsIs(err, target error) bool {
	return errors.Is(err, target)
}

func TestViewDuringPaidTutorSession(t *testing.T) {
	r := DefaultRules()
	req := liveRequest(tutor, schema.CompensationPaid)

	helper := r.View(req, tutor.Email, tutor, false, t0.Add(45*time.Second))
	assert.Equal(t, SessionTypeTutor, helper.SessionType)
	assert.True(t, helper.IsHelper)
	assert.True(t, helper.IsPaidSession)
	assert.False(t, helper.CanProceed)
	assert.True(t, helper.PaymentPromptDue)
	assert.False(t, helper.CanEnd)
	assert.Equal(t, 0, helper.SecondsUntilEnd)

	author := r.View(req, student.Email, tutor, false, t0.Add(45*time.Second))
	assert.False(t, author.IsHelper)
	assert.False(t, author.PaymentPromptDue)
}

func TestViewCountdown(t *testing.T) {
	r := DefaultRules()
	req := liveRequest(peer, schema.CompensationFree)

	v := r.View(req, student.Email, peer, false, t0.Add(12*time.Second))
	assert.Equal(t, SessionTypePeer, v.SessionType)
	assert.Equal(t, 18, v.SecondsUntilEnd)
	assert.False(t, v.CanEnd)

	v = r.View(req, student.Email, peer, false, t0.Add(31*time.Second))
	assert.True(t, v.CanEnd)
}

func TestViewAfterCompletion(t *testing.T) {
	r := DefaultRules()

	peerDone := completedRequest(peer, 12)
	assert.True(t, r.View(peerDone, student.Email, peer, false, t0).CanVouch)
	assert.False(t, r.View(peerDone, peer.Email, peer, false, t0).CanVouch)
	assert.False(t, r.View(peerDone, student.Email, peer, true, t0).CanVouch)

	short := completedRequest(tutor, 0)
	v := r.View(short, student.Email, tutor, false, t0)
	assert.False(t, v.QualifiesToVouch)
	assert.False(t, v.CanVouch)
	assert.Equal(t, 3, v.MinVouchMinutes)
}
