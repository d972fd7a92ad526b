package presence

import (
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// sendBuffer bounds the per-client outbound queue; a client that
// falls this far behind is treated as dead.
const sendBuffer = 8

// Client is one live presence connection. It belongs to the hub from
// Admit until the hub removes it; the hub closing the send channel is
// the signal that membership has ended.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

func (c *Client) ID() string {
	return c.id
}

// WritePump drains the outbound queue into the websocket. When the
// hub closes the queue it writes a close frame and stops; a write
// error reports the client back to the hub for removal.
func (c *Client) WritePump(hub *Hub) {
	defer c.conn.Close()

	for {
		payload, ok := <-c.send
		if !ok {
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			hub.Remove(c)
			return
		}
	}
}

// ReadPump discards inbound traffic; clients only send to keep the
// connection alive. A read error is the disconnect signal.
func (c *Client) ReadPump(hub *Hub) {
	defer c.conn.Close()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("presence: read %s: %v", c.id, err)
			}
			hub.Remove(c)
			return
		}
	}
}
