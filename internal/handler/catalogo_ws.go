package handler

import (
	"net/http"

	"github.com/MaxiBlanc/Krevo-control/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The session middleware already gated this route; the panel may be
	// served from another origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CatalogoWSHandler streams full catalog snapshots over a websocket: one on
// attach, then one per store change, until the client disconnects.
type CatalogoWSHandler struct{ hub *realtime.Hub }

func NewCatalogoWSHandler(hub *realtime.Hub) *CatalogoWSHandler {
	return &CatalogoWSHandler{hub: hub}
}

// Stream GET /v1/catalogo/ws
func (h *CatalogoWSHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Paired acquire/release: the deferred Unsubscribe runs on every exit
	// path, so no handler outlives its socket.
	id, snapshots := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	// Reader goroutine only watches for the client going away.
	desconectado := make(chan struct{})
	go func() {
		defer close(desconectado)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		case <-desconectado:
			return
		}
	}
}
