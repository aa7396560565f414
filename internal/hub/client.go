package hub

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// StatusProvider supplies the adapter diagnostic lines shown to
// clients on request.
type StatusProvider interface {
	StatusLines() []string
}

// Client represents a connected WebSocket client.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// WritePump sends messages from the send channel to the WebSocket
// connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump reads client messages and answers status requests.
func (c *Client) ReadPump(status StatusProvider) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Error parsing client message: %v", err)
			continue
		}

		switch clientMsg.Type {
		case "status":
			msg := NewStatusMessage(status.StatusLines())
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("Error marshaling status: %v", err)
				continue
			}
			select {
			case c.send <- data:
			default:
			}
		}
	}
}
