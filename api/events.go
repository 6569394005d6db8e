package api

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"nhooyr.io/websocket"

	"github.com/biggrade/biggrade-api/hub"
)

// sessionEvents upgrades the request to a websocket and pushes every change
// of the gig to the participant until either side goes away
func (s *Server) sessionEvents(c *gin.Context) {
	sess, ok := s.loadSession(c)
	if !ok {
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: viper.GetBool("server.ws_insecure_skip_verify"),
	})
	if err != nil {
		log.WithError(err).Warn("fail to accept websocket")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	// clients only listen, reading is left to the library
	ctx := conn.CloseRead(c.Request.Context())

	sub := s.hub.Subscribe(sess.help.ID.String(), sess.user.Email)
	defer s.hub.Unsubscribe(sub)

	if err := hub.Stream(ctx, conn, sub); err != nil {
		log.WithError(err).WithField("gig", sub.GigID).Debug("event stream closed")
		return
	}

	conn.Close(websocket.StatusNormalClosure, "")
}
