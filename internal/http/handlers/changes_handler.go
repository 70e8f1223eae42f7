package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tabela/internal/modules/changefeed"
)

type ChangesHandler struct {
	hub      *changefeed.Hub
	upgrader websocket.Upgrader
}

// NewChangesHandler serves the change feed. The feed is read-only and
// carries no data beyond topic names, so any origin may subscribe.
func NewChangesHandler(hub *changefeed.Hub) *ChangesHandler {
	return &ChangesHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *ChangesHandler) Subscribe(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}
	h.hub.Attach(conn)
}
