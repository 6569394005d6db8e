package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/biggrade/biggrade-api/background"
	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/hub"
	"github.com/biggrade/biggrade-api/schema"
	"github.com/biggrade/biggrade-api/store"
	"github.com/biggrade/biggrade-api/utils"
)

const defaultLanguage = "en"

// loadHelp reads the request named by the `helpID` path parameter. It
// aborts the request and returns false when the request cannot be served.
func (s *Server) loadHelp(c *gin.Context) (*schema.HelpRequest, bool) {
	id := c.Param("helpID")
	if _, err := uuid.Parse(id); err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return nil, false
	}

	help, err := s.store.GetHelp(id)
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}

	return help, true
}

// responderOf returns the user who accepted help, or nil for open requests
func (s *Server) responderOf(help *schema.HelpRequest, current *schema.User) (*schema.User, error) {
	email := help.Responder()
	if email == "" {
		return nil, nil
	}

	if current != nil && current.Email == email {
		return current, nil
	}

	return s.store.GetUser(email)
}

// askForHelp is the API for a student to post a help request
func (s *Server) askForHelp(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		Subject          string `json:"subject"`
		CompensationType string `json:"compensation_type"`
		OfferedPrice     string `json:"offered_price"`
		HelpFrom         string `json:"help_from"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if strings.TrimSpace(params.Title) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.CompensationType == "" {
		params.CompensationType = schema.CompensationUndecided
	}
	if params.HelpFrom == "" {
		params.HelpFrom = schema.HelpFromAnyone
	}

	if err := gig.CanCreate(user, params.HelpFrom, params.CompensationType); err != nil {
		abortWithError(c, err)
		return
	}

	help := &schema.HelpRequest{
		AuthorEmail:      user.Email,
		AuthorName:       user.FullName,
		Title:            strings.TrimSpace(params.Title),
		Description:      params.Description,
		Subject:          params.Subject,
		CompensationType: params.CompensationType,
		HelpFrom:         params.HelpFrom,
	}
	if params.CompensationType == schema.CompensationPaid {
		help.OfferedPrice = params.OfferedPrice
	}

	if err := s.store.CreateHelp(help); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, help)
}

// listHelps returns the open requests the current user could take
func (s *Server) listHelps(c *gin.Context) {
	var params struct {
		Compensation string `form:"compensation"`
		Subject      string `form:"subject"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	helps, err := s.store.ListHelps(currentUser(c), store.HelpFilter{
		Compensation: params.Compensation,
		Subject:      params.Subject,
		Limit:        listLimit(c, consts.REQUEST_LIST_LIMIT),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": helps})
}

// listMyHelps returns the gigs the current user posted or took
func (s *Server) listMyHelps(c *gin.Context) {
	helps, err := s.store.ListMyHelps(currentUser(c).Email, listLimit(c, consts.REQUEST_LIST_LIMIT))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": helps})
}

// getHelp returns one request. Participants always see it; others only
// while it is open and meant for their role.
func (s *Server) getHelp(c *gin.Context) {
	user := currentUser(c)

	help, ok := s.loadHelp(c)
	if !ok {
		return
	}

	if !help.IsParticipant(user.Email) &&
		(help.Status != schema.HELP_OPEN || !gig.VisibleTo(help, user)) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	}

	c.JSON(http.StatusOK, help)
}

// answerHelp is the API to accept a request. The session starts right away.
func (s *Server) answerHelp(c *gin.Context) {
	user := currentUser(c)

	help, ok := s.loadHelp(c)
	if !ok {
		return
	}

	if err := gig.CanAccept(help, user); err != nil {
		abortWithError(c, err)
		return
	}

	notice := &schema.SessionNotification{
		GigID:            help.ID,
		RecipientEmail:   help.AuthorEmail,
		NotificationType: schema.NotificationTutorAccepted,
		Message: utils.Localize(defaultLanguage, utils.MsgHelpAcceptedNotice, map[string]interface{}{
			"Name":  user.FullName,
			"Title": help.Title,
		}),
		RedirectToSession: true,
	}

	accepted, err := s.store.AcceptHelp(help.ID.String(), user, s.now(), notice)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.enqueue(background.TASK_NOTIFY_HELP_ACCEPTED,
		accepted.ID.String(), accepted.AuthorEmail, user.FullName, accepted.Title)
	s.publish(accepted.ID.String(), hub.EventHelpAccepted, accepted)

	c.JSON(http.StatusOK, gin.H{
		"result":   "OK",
		"help":     accepted,
		"redirect": fmt.Sprintf("/session/%s", accepted.ID),
	})
}

// cancelHelp withdraws an open request
func (s *Server) cancelHelp(c *gin.Context) {
	user := currentUser(c)

	help, ok := s.loadHelp(c)
	if !ok {
		return
	}

	if err := gig.CanCancel(help, user.Email); err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.store.CancelHelp(help.ID.String(), user.Email); err != nil {
		abortWithError(c, err)
		return
	}

	s.publish(help.ID.String(), hub.EventHelpCancelled, nil)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
