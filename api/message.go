package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/hub"
	"github.com/biggrade/biggrade-api/schema"
)

// listMessages returns the chat of a session. While a paid session waits for
// payment only system messages are returned.
func (s *Server) listMessages(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	canProceed := gig.CanProceed(sess.help, sess.responder)

	messages, err := s.store.ListMessages(sess.help.ID.String(), !canProceed, listLimit(c, consts.MESSAGE_LIST_LIMIT))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":      messages,
		"can_proceed": canProceed,
	})
}

// sendMessage posts a chat message into a live session
func (s *Server) sendMessage(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	var params struct {
		Message string `json:"message"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := gig.CanChat(sess.help, sess.user.Email, sess.responder, params.Message); err != nil {
		abortWithError(c, err)
		return
	}

	msg := &schema.SessionMessage{
		GigID:       sess.help.ID,
		SenderEmail: sess.user.Email,
		SenderName:  sess.user.FullName,
		Message:     strings.TrimSpace(params.Message),
		MessageType: schema.MessageTypeUser,
	}

	if err := s.store.CreateMessage(msg); err != nil {
		abortWithError(c, err)
		return
	}

	s.publish(sess.help.ID.String(), hub.EventMessageCreated, msg)

	c.JSON(http.StatusOK, msg)
}
