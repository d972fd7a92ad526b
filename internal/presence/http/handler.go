package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/resume-site/resume-backend/internal/presence"
)

// The REST layer already allows any origin, so the upgrade does too.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *presence.Hub
}

func NewHandler(hub *presence.Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/ws/online-users", h.serve)
}

func (h *Handler) serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("presence: upgrade:", err)
		return
	}

	client := presence.NewClient(conn)
	h.hub.Admit(client)

	go client.WritePump(h.hub)
	client.ReadPump(h.hub)
}
