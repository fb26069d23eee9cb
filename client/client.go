package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Client owns the websocket session with the game server. A reader
// goroutine decodes incoming messages and places the newest snapshot in
// a single-slot mailbox; older unread snapshots are replaced, never
// queued, so a slow render loop cannot pile up stale state.
type Client struct {
	sock     *websocket.Conn
	playerID string

	latest  chan protocol.SnapshotMessage
	welcome chan string

	sendInterval time.Duration
	lastKeys     protocol.Keys
	lastSend     time.Time
	hasSent      bool
}

// Dial connects, sends the join handshake and waits for the server to
// assign a player id.
func Dial(serverURL, name string, sendInterval time.Duration) (*Client, error) {
	sock, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", serverURL, err)
	}

	c := &Client{
		sock:         sock,
		latest:       make(chan protocol.SnapshotMessage, 1),
		welcome:      make(chan string, 1),
		sendInterval: sendInterval,
	}

	join := protocol.JoinMessage{Type: protocol.TypeJoin, Name: name}
	if err := sock.WriteJSON(join); err != nil {
		sock.Close()
		return nil, fmt.Errorf("send join: %w", err)
	}

	go c.readPump()

	select {
	case id := <-c.welcome:
		c.playerID = id
	case <-time.After(5 * time.Second):
		sock.Close()
		return nil, errors.New("timed out waiting for welcome")
	}

	return c, nil
}

// PlayerID returns the id the server assigned during the handshake.
func (c *Client) PlayerID() string {
	return c.playerID
}

// SendInput forwards the current key state. Sends are paced: a message
// goes out when the keys changed, or after sendInterval at the latest,
// so held keys keep refreshing without flooding the connection.
func (c *Client) SendInput(keys protocol.Keys) error {
	now := time.Now()
	if c.hasSent && keys == c.lastKeys && now.Sub(c.lastSend) < c.sendInterval {
		return nil
	}

	msg := protocol.InputMessage{Type: protocol.TypeInput, Keys: keys}
	if err := c.sock.WriteJSON(msg); err != nil {
		return fmt.Errorf("send input: %w", err)
	}

	c.lastKeys = keys
	c.lastSend = now
	c.hasSent = true
	return nil
}

// PollSnapshot returns the newest snapshot received since the last call,
// if there is one. It never blocks.
func (c *Client) PollSnapshot() (protocol.SnapshotMessage, bool) {
	select {
	case snap := <-c.latest:
		return snap, true
	default:
		return protocol.SnapshotMessage{}, false
	}
}

func (c *Client) Close() error {
	return c.sock.Close()
}

func (c *Client) readPump() {
	for {
		_, data, err := c.sock.ReadMessage()
		if err != nil {
			// Render loop keeps drawing the last applied state.
			log.WithError(err).Info("Server connection closed")
			return
		}

		msgType, err := protocol.PeekType(data)
		if err != nil {
			log.WithError(err).Warn("Dropping malformed server message")
			continue
		}

		switch msgType {
		case protocol.TypeWelcome:
			msg, err := protocol.Decode[protocol.WelcomeMessage](data)
			if err != nil {
				log.WithError(err).Warn("Dropping malformed welcome message")
				continue
			}
			select {
			case c.welcome <- msg.ID:
			default:
			}

		case protocol.TypeState:
			snap, err := protocol.Decode[protocol.SnapshotMessage](data)
			if err != nil {
				log.WithError(err).Warn("Dropping malformed snapshot")
				continue
			}
			c.offer(snap)

		default:
			log.WithField("type", msgType).Warn("Dropping message of unknown type")
		}
	}
}

// offer places snap in the mailbox, evicting an unread older snapshot.
func (c *Client) offer(snap protocol.SnapshotMessage) {
	for {
		select {
		case c.latest <- snap:
			return
		default:
		}
		select {
		case <-c.latest:
		default:
		}
	}
}
