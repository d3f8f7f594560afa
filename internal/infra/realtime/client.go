package realtime

import (
	"net/http"
	"slices"
	"time"

	"offerengine/config"
	"offerengine/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 512
)

// Client is one websocket connection of an account.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	accountID uuid.UUID
}

// Upgrader builds the websocket upgrader honouring the configured origins.
func Upgrader(cfg *config.Config) websocket.Upgrader {
	var allowed []string
	if cfg.Realtime != nil {
		allowed = cfg.Realtime.AllowedOrigins
	}

	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(allowed) == 0 {
				return true
			}

			return slices.Contains(allowed, origin)
		},
	}
}

// Serve upgrades the request and pumps messages for the account until the connection closes.
func (h *Hub) Serve(upgrader websocket.Upgrader, w http.ResponseWriter, r *http.Request, accountID uuid.UUID, pingInterval time.Duration) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}

	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, h.sendBuffer),
		accountID: accountID,
	}

	if !h.enqueue(h.register, client) {
		_ = conn.Close()

		return nil
	}

	if pingInterval <= 0 || pingInterval >= pongWait {
		pingInterval = (pongWait * 9) / 10
	}

	go client.writePump(pingInterval)
	client.readPump()

	return nil
}

// readPump discards inbound frames; the channel is server-to-client only.
func (c *Client) readPump() {
	defer func() {
		c.hub.enqueue(c.hub.unregister, c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
