package http

import (
	"time"

	"laundry/internal/generated/servers"
	"laundry/internal/notifier"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// SubscribeNotifications handles GET /api/v1/roles/{role}/stages/{stage}/notifications.
// The connection is upgraded to a websocket that streams one entry per order arriving in
// the stage. Clients report visibility with {"visible": bool}.
func (s *Server) SubscribeNotifications(
	c echo.Context, role servers.RolePath, stage servers.StagePath, params servers.SubscribeNotificationsParams,
) error {
	key, err := toKey(role, stage, params.ActorId)
	if err != nil {
		return s.respondError(c, err)
	}

	sub, err := s.notifications.Subscribe(key)
	if err != nil {
		return s.respondError(c, err)
	}

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the client.
		sub.Close()
		return nil
	}

	logger := s.logger.With("role", key.Role.String(), "stage", string(key.Stage))
	logger.Info("Notification stream opened")

	go s.readVisibility(conn, sub)
	s.writeEntries(conn, sub)

	logger.Info("Notification stream closed")
	return nil
}

// readVisibility owns the read side of conn. Any read error ends the subscription.
func (s *Server) readVisibility(conn *websocket.Conn, sub *notifier.Subscription) {
	defer sub.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg visibilityMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Visible != nil {
			sub.SetVisible(*msg.Visible)
		}
	}
}

// writeEntries owns the write side of conn until the subscription or the connection ends.
func (s *Server) writeEntries(conn *websocket.Conn, sub *notifier.Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.Close()
		_ = conn.Close()
	}()

	for {
		select {
		case entry, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(toEntry(entry)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
