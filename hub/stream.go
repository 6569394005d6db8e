package hub

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
	pingTimeout  = 5 * time.Second
)

// Stream writes the events of s to conn until ctx is done, the subscriber is
// removed or the connection fails.
func Stream(ctx context.Context, conn *websocket.Conn, s *Subscriber) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.Send:
			if !ok {
				return nil
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, ev)
			cancel()
			if err != nil {
				return err
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				log.WithField("prefix", "hub").WithError(err).Debug("subscriber ping failed")
				return err
			}
		}
	}
}
