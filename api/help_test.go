package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/biggrade/biggrade-api/background"
	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/hub"
	"github.com/biggrade/biggrade-api/schema"
	"github.com/biggrade/biggrade-api/store"
)

func TestAskForHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0)

	var created *schema.HelpRequest
	s.core.EXPECT().CreateHelp(gomock.Any()).DoAndReturn(func(h *schema.HelpRequest) error {
		created = h
		return nil
	}).Times(1)

	w := serve(routerAs(amy, "POST", "/", s.askForHelp), "POST", "/", map[string]string{
		"title":         "  Integrals  ",
		"subject":       "math",
		"offered_price": "20",
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, "Integrals", created.Title)
	assert.Equal(t, amy.Email, created.AuthorEmail)
	assert.Equal(t, schema.CompensationUndecided, created.CompensationType)
	assert.Equal(t, schema.HelpFromAnyone, created.HelpFrom)
	assert.Empty(t, created.OfferedPrice, "price is only kept for paid requests")
}

func TestAskForHelpRules(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0)

	cases := []struct {
		name   string
		user   *schema.User
		body   map[string]string
		status int
		code   int64
	}{
		{"tutor cannot ask", tara, map[string]string{"title": "x"}, http.StatusForbidden, 1300},
		{"bad help_from", amy, map[string]string{"title": "x", "help_from": "mentor"}, http.StatusBadRequest, 1301},
		{"bad compensation", amy, map[string]string{"title": "x", "compensation_type": "barter"}, http.StatusBadRequest, 1302},
		{"empty title", amy, map[string]string{"title": " "}, http.StatusBadRequest, 1010},
	}

	for _, tc := range cases {
		w := serve(routerAs(tc.user, "POST", "/", s.askForHelp), "POST", "/", tc.body)
		assert.Equal(t, tc.status, w.Code, tc.name)
		assert.Equal(t, tc.code, errorCode(t, w), tc.name)
	}
}

func TestListHelps(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0)
	s.core.EXPECT().ListHelps(tara, store.HelpFilter{
		Compensation: schema.CompensationPaid,
		Subject:      "math",
		Limit:        20,
	}).Return([]schema.HelpRequest{*openRequest(schema.HelpFromTutor, schema.CompensationPaid)}, nil).Times(1)

	w := serve(routerAs(tara, "GET", "/", s.listHelps), "GET", "/?compensation=paid&subject=math&limit=20", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result []schema.HelpRequest `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result, 1)
}

func TestGetHelpVisibility(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0)
	s.core.EXPECT().GetHelp(gigID.String()).Return(openRequest(schema.HelpFromTutor, schema.CompensationFree), nil).Times(2)

	path := "/" + gigID.String()

	w := serve(routerAs(tara, "GET", "/:helpID", s.getHelp), "GET", path, nil)
	assert.Equal(t, http.StatusOK, w.Code, "a tutor sees a tutor request")

	w = serve(routerAs(ben, "GET", "/:helpID", s.getHelp), "GET", path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "a student cannot see a tutor request")

	w = serve(routerAs(ben, "GET", "/:helpID", s.getHelp), "GET", "/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1200), errorCode(t, w))
}

func TestAnswerHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0)

	accepted := liveRequest(tara, schema.CompensationPaid)
	accepted.LinkConfirmed = false
	accepted.MeetingLink = ""

	s.core.EXPECT().GetHelp(gigID.String()).Return(openRequest(schema.HelpFromAnyone, schema.CompensationPaid), nil).Times(1)
	s.core.EXPECT().AcceptHelp(gigID.String(), tara, t0, gomock.Any()).
		DoAndReturn(func(id string, u *schema.User, at time.Time, n *schema.SessionNotification) (*schema.HelpRequest, error) {
			assert.Equal(t, amy.Email, n.RecipientEmail)
			assert.Equal(t, schema.NotificationTutorAccepted, n.NotificationType)
			assert.True(t, n.RedirectToSession)
			assert.Contains(t, n.Message, "Tara accepted your request")
			return accepted, nil
		}).Times(1)
	s.queue.EXPECT().SendTask(gomock.Any()).
		DoAndReturn(func(sig *tasks.Signature) (*result.AsyncResult, error) {
			assert.Equal(t, background.TASK_NOTIFY_HELP_ACCEPTED, sig.Name)
			assert.Len(t, sig.Args, 4)
			assert.Equal(t, amy.Email, sig.Args[1].Value)
			return nil, nil
		}).Times(1)

	sub := s.hub.Subscribe(gigID.String(), amy.Email)
	defer s.hub.Unsubscribe(sub)

	w := serve(routerAs(tara, "PATCH", "/:helpID", s.answerHelp), "PATCH", "/"+gigID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Help     schema.HelpRequest `json:"help"`
		Redirect string             `json:"redirect"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.HELP_IN_SESSION, resp.Help.Status)
	assert.Equal(t, fmt.Sprintf("/session/%s", gigID), resp.Redirect)

	ev := <-sub.Send
	assert.Equal(t, hub.EventHelpAccepted, ev.Type)
	assert.Equal(t, gigID.String(), ev.GigID)
}

func TestAnswerHelpRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0)
	path := "/" + gigID.String()

	// own request
	s.core.EXPECT().GetHelp(gigID.String()).Return(openRequest(schema.HelpFromAnyone, schema.CompensationFree), nil).Times(1)
	w := serve(routerAs(amy, "PATCH", "/:helpID", s.answerHelp), "PATCH", path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1303), errorCode(t, w))

	// tutor-only request
	s.core.EXPECT().GetHelp(gigID.String()).Return(openRequest(schema.HelpFromTutor, schema.CompensationFree), nil).Times(1)
	w = serve(routerAs(ben, "PATCH", "/:helpID", s.answerHelp), "PATCH", path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1305), errorCode(t, w))

	// lost the race to another helper
	s.core.EXPECT().GetHelp(gigID.String()).Return(openRequest(schema.HelpFromAnyone, schema.CompensationFree), nil).Times(1)
	s.core.EXPECT().AcceptHelp(gigID.String(), ben, t0, gomock.Any()).Return(nil, gig.ErrRequestNotOpen).Times(1)
	w = serve(routerAs(ben, "PATCH", "/:helpID", s.answerHelp), "PATCH", path, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1304), errorCode(t, w))
}

func TestCancelHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(ctl, t0)
	path := "/" + gigID.String()

	s.core.EXPECT().GetHelp(gigID.String()).Return(openRequest(schema.HelpFromAnyone, schema.CompensationFree), nil).Times(2)
	s.core.EXPECT().CancelHelp(gigID.String(), amy.Email).Return(nil).Times(1)

	w := serve(routerAs(amy, "DELETE", "/:helpID", s.cancelHelp), "DELETE", path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(routerAs(ben, "DELETE", "/:helpID", s.cancelHelp), "DELETE", path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1403), errorCode(t, w))
}
