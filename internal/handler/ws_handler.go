package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/events"
	"github.com/bilimtest/quizadmin-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const wsWriteTimeout = 10 * time.Second

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams collection change events to connected console
// clients. Events carry only the collection, action and target id; the
// client re-fetches on its own schedule so an open edit form is never
// overwritten by a push.
type WSHandler struct {
	feed     *events.Changefeed
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(feed *events.Changefeed, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		feed:     feed,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// AdminStream godoc
// WS /ws/v1/admin/stream
// Upgrades to WebSocket and pushes change events until the client hangs up.
func (h *WSHandler) AdminStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	subID, ch := h.feed.Subscribe()
	defer h.feed.Unsubscribe(subID)

	wsLog := h.log.With().Str("admin", claims.Email).Logger()
	wsLog.Info().Msg("Console client connected")

	// Reader drains control frames and signals when the client hangs up.
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
		case <-done:
			wsLog.Debug().Msg("Console client disconnected")
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				wsLog.Debug().Err(err).Msg("Write failed, closing stream")
				return
			}
		}
	}
}
