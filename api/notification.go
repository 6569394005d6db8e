package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/biggrade/biggrade-api/consts"
)

// listNotifications returns the unread session invites of the current user
func (s *Server) listNotifications(c *gin.Context) {
	notifications, err := s.store.ListUnreadNotifications(currentUser(c).Email, listLimit(c, consts.NOTIFICATION_LIST_LIMIT))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": notifications})
}

func (s *Server) readNotification(c *gin.Context) {
	id := c.Param("notificationID")
	if _, err := uuid.Parse(id); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.MarkNotificationRead(id, currentUser(c).Email); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
