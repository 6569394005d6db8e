package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/biggrade/biggrade-api/background"
	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/schema"
)

func TestSubmitVouch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	now := t0.Add(2 * time.Hour)
	s := newTestServer(ctl, now)

	s.core.EXPECT().GetHelp(gigID.String()).Return(completedRequest(tara, 5), nil).Times(1)
	s.core.EXPECT().GetUser(tara.Email).Return(tara, nil).Times(1)
	s.core.EXPECT().HasVouched(gigID.String(), amy.Email).Return(false, nil).Times(1)
	s.core.EXPECT().HasVouchedOn(amy.Email, "2020-05-04").Return(false, nil).Times(1)
	s.core.EXPECT().AwardVouch(gomock.Any()).DoAndReturn(func(v *schema.Vouch) error {
		assert.Equal(t, amy.Email, v.VoucherEmail)
		assert.Equal(t, tara.Email, v.VoucheeEmail)
		assert.Equal(t, schema.VouchTutorRating, v.VouchType)
		assert.Equal(t, 5, v.Points)
		assert.Equal(t, "2020-05-04", v.VouchDate)
		return nil
	}).Times(1)
	s.queue.EXPECT().SendTask(gomock.Any()).DoAndReturn(func(sig *tasks.Signature) (*result.AsyncResult, error) {
		assert.Equal(t, background.TASK_SYNC_DIRECTORY, sig.Name)
		assert.Equal(t, tara.Email, sig.Args[0].Value)
		return nil, nil
	}).Times(1)

	w := serve(routerAs(amy, "POST", "/:helpID", s.submitVouch), "POST", "/"+gigID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestSubmitVouchByTutor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0.Add(time.Hour))

	s.core.EXPECT().GetHelp(gigID.String()).Return(completedRequest(tara, 5), nil).Times(1)
	s.core.EXPECT().GetUser(amy.Email).Return(amy, nil).Times(1)
	s.core.EXPECT().HasVouched(gigID.String(), tara.Email).Return(false, nil).Times(1)
	s.core.EXPECT().HasVouchedOn(tara.Email, gomock.Any()).Return(false, nil).Times(1)
	s.core.EXPECT().AwardVouch(gomock.Any()).DoAndReturn(func(v *schema.Vouch) error {
		assert.Equal(t, amy.Email, v.VoucheeEmail)
		assert.Equal(t, schema.VouchStudentRating, v.VouchType)
		return nil
	}).Times(1)
	s.queue.EXPECT().SendTask(gomock.Any()).Return(nil, assert.AnError).Times(1)

	w := serve(routerAs(tara, "POST", "/:helpID", s.submitVouch), "POST", "/"+gigID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code, "a failed directory sync does not fail the vouch")
}

func TestSubmitVouchRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0.Add(time.Hour))
	path := "/" + gigID.String()

	s.core.EXPECT().GetUser(amy.Email).Return(amy, nil).AnyTimes()
	s.core.EXPECT().GetUser(ben.Email).Return(ben, nil).AnyTimes()
	s.core.EXPECT().HasVouchedOn(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	// peer helpers never vouch
	s.core.EXPECT().GetHelp(gigID.String()).Return(completedRequest(ben, 10), nil).Times(1)
	s.core.EXPECT().HasVouched(gigID.String(), ben.Email).Return(false, nil).Times(1)
	w := serve(routerAs(ben, "POST", "/:helpID", s.submitVouch), "POST", path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1604), errorCode(t, w))

	// too short
	s.core.EXPECT().GetHelp(gigID.String()).Return(completedRequest(ben, 2), nil).Times(1)
	s.core.EXPECT().HasVouched(gigID.String(), amy.Email).Return(false, nil).Times(1)
	w = serve(routerAs(amy, "POST", "/:helpID", s.submitVouch), "POST", path, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1602), errorCode(t, w))

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "session was too short")

	// already vouched
	s.core.EXPECT().GetHelp(gigID.String()).Return(completedRequest(ben, 10), nil).Times(1)
	s.core.EXPECT().HasVouched(gigID.String(), amy.Email).Return(true, nil).Times(1)
	w = serve(routerAs(amy, "POST", "/:helpID", s.submitVouch), "POST", path, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1601), errorCode(t, w))

	// a concurrent vouch on the same day reaches the unique index first
	s.core.EXPECT().GetHelp(gigID.String()).Return(completedRequest(ben, 10), nil).Times(1)
	s.core.EXPECT().HasVouched(gigID.String(), amy.Email).Return(false, nil).Times(1)
	s.core.EXPECT().AwardVouch(gomock.Any()).Return(gig.ErrDailyVouchLimit).Times(1)
	w = serve(routerAs(amy, "POST", "/:helpID", s.submitVouch), "POST", path, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1603), errorCode(t, w))
}

func TestVouchStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0.Add(time.Hour))
	s.core.EXPECT().GetHelp(gigID.String()).Return(completedRequest(ben, 10), nil).Times(1)
	s.core.EXPECT().HasVouched(gigID.String(), ben.Email).Return(false, nil).Times(1)

	w := serve(routerAs(ben, "GET", "/:helpID", s.vouchStatus), "GET", "/"+gigID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CanVouch    bool   `json:"can_vouch"`
		SessionType string `json:"session_type"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.CanVouch, "peer helpers cannot vouch")
	assert.Equal(t, gig.SessionTypePeer, resp.SessionType)
}
