package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 60
	maxNameLen        = 16
)

// Client represents one WebSocket connection and its candidate player.
// The connection id doubles as the player id once joined.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	playerID   string
	remoteAddr string
	msgCount   int
	msgResetAt time.Time
}

// NewClient creates a Client with a freshly assigned connection id
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		playerID:   newConnectionID(),
		remoteAddr: remoteAddr,
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		c.handleMessage(message)
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// 0xFF prefix marks a binary frame queued by SendBinary
			var err error
			if len(message) > 0 && message[0] == 0xFF {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message.
// Prefixes with a 0xFF marker byte so WritePump can tell it from text.
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = 0xFF
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

// handleMessage routes an inbound intent. A malformed message only
// affects itself: it is logged and dropped, never fatal.
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("unmarshal error: %v", err)
		return
	}

	metricIntentsTotal.WithLabelValues(env.T).Inc()

	switch env.T {
	case MsgPlayerJoin:
		c.handleJoin(env.D)
	case MsgPlayerMove:
		c.handleMove(env.D)
	case MsgPlayerShoot:
		c.handleShoot(env.D)
	case MsgPlayerHit:
		c.handleHit(env.D)
	case MsgCreateTeam:
		c.handleCreateTeam(env.D)
	case MsgJoinTeam:
		c.handleJoinTeam(env.D)
	case MsgStartTeamDM:
		c.handleStartTeamDM(env.D)
	case MsgPing:
		c.SendJSON(Envelope{T: MsgPong})
	}
}

func (c *Client) handleJoin(data json.RawMessage) {
	var msg JoinMsg
	if len(data) > 0 {
		if err := json.Unmarshal(data, &msg); err != nil {
			return
		}
	}
	if len(msg.Name) > maxNameLen {
		msg.Name = msg.Name[:maxNameLen]
	}
	c.hub.game.HandleJoin(c.playerID, msg, c)
}

func (c *Client) handleMove(data json.RawMessage) {
	var msg MoveMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	c.hub.game.HandleMove(c.playerID, msg)
}

func (c *Client) handleShoot(data json.RawMessage) {
	var msg ShootMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	c.hub.game.HandleShoot(c.playerID, msg)
}

func (c *Client) handleHit(data json.RawMessage) {
	var msg HitMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	c.hub.game.HandleHit(c.playerID, msg)
}

func (c *Client) handleCreateTeam(data json.RawMessage) {
	var msg TeamMsg
	if err := json.Unmarshal(data, &msg); err != nil || msg.TeamCode == "" {
		return
	}
	c.hub.game.CreateTeam(c.playerID, msg.TeamCode)
}

func (c *Client) handleJoinTeam(data json.RawMessage) {
	var msg TeamMsg
	if err := json.Unmarshal(data, &msg); err != nil || msg.TeamCode == "" {
		return
	}
	c.hub.game.JoinTeam(c.playerID, msg.TeamCode)
}

func (c *Client) handleStartTeamDM(data json.RawMessage) {
	var msg TeamMsg
	if err := json.Unmarshal(data, &msg); err != nil || msg.TeamCode == "" {
		return
	}
	c.hub.game.StartTeamDM(c.playerID, msg.TeamCode)
}
