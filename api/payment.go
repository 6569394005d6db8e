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

// sendPaymentInstructions is the API for a tutor to tell the student how to pay
func (s *Server) sendPaymentInstructions(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	var params struct {
		Instructions string `json:"instructions"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	instructions := strings.TrimSpace(params.Instructions)
	if err := gig.CanSendInstructions(sess.help, sess.user.Email, sess.responder, instructions); err != nil {
		abortWithError(c, err)
		return
	}

	msg := schema.NewSystemMessage(sess.help.ID, utils.Localize(defaultLanguage, utils.MsgPaymentInstructions, map[string]interface{}{
		"Name":         sess.user.FullName,
		"Instructions": instructions,
	}))

	help, err := s.store.SendPaymentInstructions(sess.help.ID.String(), sess.user.Email, instructions, msg)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.publish(help.ID.String(), hub.EventInstructionsSent, help)

	c.JSON(http.StatusOK, help)
}

// markStudentPaid is the API for the student to declare the payment sent
func (s *Server) markStudentPaid(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	if err := gig.CanMarkPaid(sess.help, sess.user.Email, sess.responder); err != nil {
		abortWithError(c, err)
		return
	}

	msg := schema.NewSystemMessage(sess.help.ID, utils.Localize(defaultLanguage, utils.MsgStudentPaid, map[string]interface{}{
		"Name": sess.user.FullName,
	}))

	help, err := s.store.MarkStudentPaid(sess.help.ID.String(), sess.user.Email, msg)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.publish(help.ID.String(), hub.EventStudentPaid, help)

	c.JSON(http.StatusOK, help)
}

// confirmPaymentReceived is the API for the tutor to confirm the payment.
// It unlocks chat and ending the session.
func (s *Server) confirmPaymentReceived(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	if err := gig.CanConfirmPayment(sess.help, sess.user.Email, sess.responder); err != nil {
		abortWithError(c, err)
		return
	}

	msg := schema.NewSystemMessage(sess.help.ID, utils.Localize(defaultLanguage, utils.MsgPaymentConfirmed, map[string]interface{}{
		"Name": sess.user.FullName,
	}))

	help, err := s.store.ConfirmPaymentReceived(sess.help.ID.String(), sess.user.Email, msg)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.publish(help.ID.String(), hub.EventPaymentConfirmed, help)

	c.JSON(http.StatusOK, help)
}
