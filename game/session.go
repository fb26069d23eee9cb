package game

import (
	"net/http"
	"sync"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/latency"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wire abstracts the websocket connection so tests can drive a session
// without a network socket.
type wire interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// session is the per-connection handler. The read pump pushes raw client
// messages through the incoming latency gate into the game inbox; the
// write pump drains snapshots arriving through the outgoing gate. Only
// the game loop goroutine touches playerID after the join handshake.
type session struct {
	game *Game
	sock wire

	send    chan []byte
	inGate  *latency.Gate[inbound]
	outGate *latency.Gate[[]byte]

	playerID string

	done      chan struct{}
	closeOnce sync.Once
}

func newSession(g *Game, sock wire) *session {
	send := make(chan []byte, 16)
	return &session{
		game:    g,
		sock:    sock,
		send:    send,
		inGate:  latency.NewGate(g.incomingLatency, g.inbox),
		outGate: latency.NewGate(g.outgoingLatency, send),
		done:    make(chan struct{}),
	}
}

// HandleNewConnection upgrades an HTTP request to a websocket and starts
// the session pumps for it.
func (g *Game) HandleNewConnection(w http.ResponseWriter, r *http.Request) {
	sock, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("Failed to upgrade connection to websocket")
		return
	}

	sess := newSession(g, sock)
	go sess.readPump()
	go sess.writePump()
}

// deliver queues an outgoing message behind the outgoing latency gate.
func (s *session) deliver(data []byte) bool {
	return s.outGate.Send(data)
}

func (s *session) readPump() {
	defer func() {
		s.game.disconnect <- s
	}()

	for {
		_, data, err := s.sock.ReadMessage()
		if err != nil {
			break
		}
		s.inGate.Send(inbound{sess: s, data: data})
	}
}

func (s *session) writePump() {
	for {
		select {
		case data := <-s.send:
			if err := s.sock.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

// close tears down the gates and the socket. Safe to call more than
// once; the read pump and the game loop both end up here.
func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.inGate.Close()
		s.outGate.Close()
		s.sock.Close()
	})
}
