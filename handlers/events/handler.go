package events

import (
	"net/http"

	"funfans-backend/handlers/respond"
	"funfans-backend/realtime"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

// New accepts websocket handshakes from allowedOrigins; "*" allows any origin.
func New(hub *realtime.Hub, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// @Summary Ledger events
// @Description Websocket streaming the caller's credit grants and purchases. The token may be passed as the token query parameter.
// @Tags events
// @Security BearerAuth
// @Param token query string false "JWT when the Authorization header cannot be set"
// @Success 101 {string} string "Switching Protocols"
// @Router /events/ws [get]
func (h *Handler) ServeWS(c *gin.Context) {
	userID := respond.UserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Websocket upgrade failed")
		return
	}

	client := &realtime.Client{
		Hub:    h.hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
	}
	if !h.hub.Register(client) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
