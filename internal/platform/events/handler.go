package events

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func RegisterRoutes(r gin.IRoutes, hub *Hub) {
	h := &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// the API is same-origin behind the SPA; CORS covers dev
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	r.GET("/events", h.Stream)
}

// Stream upgrades to a WebSocket and forwards change events for the
// requested tables (?tables=slots,registrations). The subscription lives
// until the client disconnects.
func (h *Handler) Stream(c *gin.Context) {
	var tables []string
	if raw := c.Query("tables"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tables = append(tables, t)
			}
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response
		log.Printf("events: upgrade failed: %v", err)
		return
	}

	ch, cancel := h.hub.Subscribe(tables)
	defer cancel()
	defer conn.Close()

	// Reader only to observe close/errors; clients never send payloads.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
