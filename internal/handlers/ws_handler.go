package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/fortune-club/internal/auth"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	"github.com/BruksfildServices01/fortune-club/internal/realtime"
)

// WSHandler authenticates with ?token= since browsers cannot set headers
// on websocket requests.
type WSHandler struct {
	hub      *realtime.Hub
	tokens   *auth.Tokens
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *realtime.Hub, tokens *auth.Tokens) *WSHandler {
	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *WSHandler) Connect(c *gin.Context) {
	actor, err := h.tokens.Parse(c.Query("token"))
	if err != nil {
		httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		middleware.LoggerFromContext(c).Warn("websocket upgrade failed")
		return
	}

	h.hub.Serve(conn, actor.UserID)
}
