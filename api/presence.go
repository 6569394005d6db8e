package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// heartbeat refreshes the last seen time of the current user in the directory
func (s *Server) heartbeat(c *gin.Context) {
	if err := s.mongoStore.TouchPresence(currentUser(c), s.now()); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
