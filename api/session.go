package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/hub"
	"github.com/biggrade/biggrade-api/schema"
	"github.com/biggrade/biggrade-api/utils"
)

// session is a help request seen by one of its participants
type session struct {
	user      *schema.User
	help      *schema.HelpRequest
	responder *schema.User
}

// loadSession loads the gig of the path and makes sure the current user
// takes part in it
func (s *Server) loadSession(c *gin.Context) (*session, bool) {
	user := currentUser(c)

	help, ok := s.loadHelp(c)
	if !ok {
		return nil, false
	}

	if !help.IsParticipant(user.Email) {
		abortWithError(c, gig.ErrNotParticipant)
		return nil, false
	}

	responder, err := s.responderOf(help, user)
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}

	return &session{user: user, help: help, responder: responder}, true
}

func (s *Server) sessionView(sess *session) (gig.SessionView, error) {
	var hasVouched bool
	if sess.help.Status == schema.HELP_COMPLETED {
		var err error
		if hasVouched, err = s.store.HasVouched(sess.help.ID.String(), sess.user.Email); err != nil {
			return gig.SessionView{}, err
		}
	}

	return s.rules.View(sess.help, sess.user.Email, sess.responder, hasVouched, s.now()), nil
}

// sessionDetail returns the session state as seen by the current user
func (s *Server) sessionDetail(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	view, err := s.sessionView(sess)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// shareMeetingLink is the API for the helper to share a meeting link.
// Sharing resets the confirmation and restarts the session clock.
func (s *Server) shareMeetingLink(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	var params struct {
		Link string `json:"link"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	link := strings.TrimSpace(params.Link)
	if err := gig.CanShareLink(sess.help, sess.user.Email, link); err != nil {
		abortWithError(c, err)
		return
	}

	msg := schema.NewSystemMessage(sess.help.ID, utils.Localize(defaultLanguage, utils.MsgLinkShared, map[string]interface{}{
		"Name": sess.user.FullName,
		"Link": link,
	}))

	help, err := s.store.ShareMeetingLink(sess.help.ID.String(), sess.user.Email, link, s.now(), msg)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.publish(help.ID.String(), hub.EventLinkShared, help)

	c.JSON(http.StatusOK, help)
}

// confirmMeetingLink is the API for the student to confirm joining the
// meeting. It starts the end countdown.
func (s *Server) confirmMeetingLink(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	if err := gig.CanConfirmLink(sess.help, sess.user.Email); err != nil {
		abortWithError(c, err)
		return
	}

	help, err := s.store.ConfirmMeetingLink(sess.help.ID.String(), sess.user.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.publish(help.ID.String(), hub.EventLinkConfirmed, help)

	c.JSON(http.StatusOK, help)
}

// endSession completes the session. Ending a completed session again
// returns the current state without any change.
func (s *Server) endSession(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	now := s.now()
	if err := s.rules.CanEnd(sess.help, sess.user.Email, sess.responder, now); err != nil {
		abortWithError(c, err)
		return
	}

	if sess.help.Status != schema.HELP_COMPLETED {
		startedAt := *sess.help.SessionStartTime
		minutes := gig.DurationMinutes(startedAt, now)

		text := utils.Localize(defaultLanguage, utils.MsgSessionEnded, map[string]interface{}{
			"Name":    sess.user.FullName,
			"Minutes": minutes,
		})
		if !s.rules.QualifiesForVouch(minutes) {
			text = utils.Localize(defaultLanguage, utils.MsgSessionEndedTooShort, map[string]interface{}{
				"Name":       sess.user.FullName,
				"Minutes":    minutes,
				"MinMinutes": s.rules.MinVouchMinutes,
			})
		}

		help, changed, err := s.store.EndSession(sess.help.ID.String(), startedAt, sess.user, now, schema.NewSystemMessage(sess.help.ID, text))
		if err != nil {
			abortWithError(c, err)
			return
		}

		if changed {
			s.publish(help.ID.String(), hub.EventSessionEnded, help)
		}
		sess.help = help
	}

	view, err := s.sessionView(sess)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
