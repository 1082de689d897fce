package api

import (
	"net/http"
	"time"

	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/hub"
	"github.com/ericogr/duel-arena/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed upgrades to a websocket and streams resolved round reports for the room.
func (h *RoomHandler) Feed(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn("websocket upgrade failed", logging.Fields{constants.LogFieldRoomID: roomID, "error": err.Error()})
		return
	}
	reports, cancel := h.feed.Subscribe(roomID)
	logging.Debug("feed subscriber joined", logging.Fields{constants.LogFieldRoomID: roomID})

	go readPump(conn, cancel)
	writePump(conn, reports)
	logging.Debug("feed subscriber left", logging.Fields{constants.LogFieldRoomID: roomID})
}

// readPump only services control frames; it cancels the subscription when
// the peer goes away.
func readPump(conn *websocket.Conn, cancel func()) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Debug("feed read error", logging.Fields{"error": err.Error()})
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, reports <-chan hub.Report) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case r, ok := <-reports:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(r); err != nil {
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
