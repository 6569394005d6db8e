package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biggrade/biggrade-api/background"
	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/hub"
	"github.com/biggrade/biggrade-api/schema"
)

// vouchStatus tells the current user whether they can still vouch on a gig
func (s *Server) vouchStatus(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	view, err := s.sessionView(sess)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"can_vouch":          view.CanVouch,
		"has_vouched":        view.HasVouched,
		"qualifies_to_vouch": view.QualifiesToVouch,
		"min_vouch_minutes":  view.MinVouchMinutes,
		"session_type":       view.SessionType,
	})
}

// submitVouch awards reputation to the other participant of a completed gig
func (s *Server) submitVouch(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	helpID := sess.help.ID.String()
	now := s.now()

	author := sess.user
	if sess.help.AuthorEmail != sess.user.Email {
		var err error
		if author, err = s.store.GetUser(sess.help.AuthorEmail); err != nil {
			abortWithError(c, err)
			return
		}
	}

	alreadyVouched, err := s.store.HasVouched(helpID, sess.user.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}

	vouchedToday, err := s.store.HasVouchedOn(sess.user.Email, schema.VouchDay(now))
	if err != nil {
		abortWithError(c, err)
		return
	}

	plan, err := s.rules.PlanVouch(gig.VouchAttempt{
		Request:        sess.help,
		Voucher:        sess.user.Email,
		Author:         author,
		Responder:      sess.responder,
		AlreadyVouched: alreadyVouched,
		VouchedToday:   vouchedToday,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	vouch := &schema.Vouch{
		GigID:        sess.help.ID,
		VoucherEmail: sess.user.Email,
		VoucheeEmail: plan.VoucheeEmail,
		VouchType:    plan.VouchType,
		Points:       plan.Points,
		VouchDate:    schema.VouchDay(now),
	}

	if err := s.store.AwardVouch(vouch); err != nil {
		abortWithError(c, err)
		return
	}

	s.enqueue(background.TASK_SYNC_DIRECTORY, plan.VoucheeEmail)
	s.publish(helpID, hub.EventVouchAwarded, vouch)

	c.JSON(http.StatusOK, gin.H{
		"result": "OK",
		"vouch":  vouch,
	})
}
