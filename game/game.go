package game

import (
	"time"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/config"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/nats"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"

	log "github.com/sirupsen/logrus"
)

// Game runs the authoritative simulation. A single goroutine (Run) owns
// the world; connection sessions talk to it exclusively through the
// inbox and disconnect channels, each behind a latency gate.
type Game struct {
	world *World
	rules Rules

	tickPeriod      time.Duration
	incomingLatency time.Duration
	outgoingLatency time.Duration

	inbox      chan inbound
	disconnect chan *session

	// sessions that have completed the join handshake, keyed by player id
	sessions map[string]*session

	// latest keys received per player, applied at the top of the next tick
	pendingKeys map[string]protocol.Keys

	lastSpawn time.Time
}

// inbound is one raw client message, delivered through the session's
// incoming latency gate.
type inbound struct {
	sess *session
	data []byte
}

func NewGame(conf config.Config) *Game {
	rules := RulesFromConfig(conf)
	world := NewWorld()
	for i := 0; i < rules.MaxCoins; i++ {
		world.SpawnCoin(rules)
	}

	return &Game{
		world:           world,
		rules:           rules,
		tickPeriod:      time.Second / time.Duration(conf.TickRate),
		incomingLatency: conf.IncomingLatency,
		outgoingLatency: conf.OutgoingLatency,
		inbox:           make(chan inbound, 256),
		disconnect:      make(chan *session),
		sessions:        make(map[string]*session),
		pendingKeys:     make(map[string]protocol.Keys),
		lastSpawn:       time.Now(),
	}
}

// Run is the simulation loop. It is the only goroutine that touches the
// world, so ticks, joins, inputs and disconnects are all serialized here.
func (g *Game) Run() {
	ticker := time.NewTicker(g.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case sess := <-g.disconnect:
			g.handleDisconnect(sess)
		case in := <-g.inbox:
			g.handleInbound(in)
		case <-ticker.C:
			g.tick()
		}
	}
}

// tick advances the world by one step: apply queued inputs, integrate
// movement, refill coins, resolve collections, then broadcast.
func (g *Game) tick() {
	for id, keys := range g.pendingKeys {
		if p, ok := g.world.Players[id]; ok {
			p.Keys = keys
		}
	}
	clear(g.pendingKeys)

	g.world.Integrate(g.rules)
	g.refillCoins()

	collections := DetectCollections(g.world, g.rules)
	g.world.ApplyCollections(collections)
	for _, c := range collections {
		nats.Publish("coin_collected", []byte(c.PlayerID))
	}

	g.world.Tick++
	g.broadcast(g.world.Snapshot())
}

// refillCoins tops the world back up to the target coin count, at most
// one coin per spawn interval.
func (g *Game) refillCoins() {
	if len(g.world.Coins) >= g.rules.MaxCoins {
		return
	}
	now := time.Now()
	if now.Sub(g.lastSpawn) < g.rules.SpawnInterval {
		return
	}
	g.world.SpawnCoin(g.rules)
	g.lastSpawn = now
}

func (g *Game) broadcast(snap protocol.SnapshotMessage) {
	data, err := protocol.Encode(snap)
	if err != nil {
		log.WithError(err).Error("Failed to encode snapshot")
		return
	}

	for id, sess := range g.sessions {
		if !sess.deliver(data) {
			log.WithField("player", id).Warn("Dropping snapshot for slow connection")
		}
	}
}

func (g *Game) handleInbound(in inbound) {
	msgType, err := protocol.PeekType(in.data)
	if err != nil {
		log.WithError(err).Warn("Dropping malformed client message")
		return
	}

	switch msgType {
	case protocol.TypeJoin:
		join, err := protocol.Decode[protocol.JoinMessage](in.data)
		if err != nil {
			log.WithError(err).Warn("Dropping malformed join message")
			return
		}
		g.handleJoin(in.sess, join)

	case protocol.TypeInput:
		if in.sess.playerID == "" {
			// Input before the join handshake completed.
			return
		}
		input, err := protocol.Decode[protocol.InputMessage](in.data)
		if err != nil {
			log.WithError(err).Warn("Dropping malformed input message")
			return
		}
		g.pendingKeys[in.sess.playerID] = input.Keys

	default:
		log.WithField("type", msgType).Warn("Dropping message of unknown type")
	}
}

func (g *Game) handleJoin(sess *session, join protocol.JoinMessage) {
	if sess.playerID != "" {
		return
	}

	name := join.Name
	if name == "" {
		name = "Player"
	}

	player := g.world.AddPlayer(name, g.rules)
	sess.playerID = player.ID
	g.sessions[player.ID] = sess

	welcome := protocol.WelcomeMessage{Type: protocol.TypeWelcome, ID: player.ID}
	data, err := protocol.Encode(welcome)
	if err != nil {
		log.WithError(err).Error("Failed to encode welcome message")
		return
	}
	sess.deliver(data)

	nats.Publish("player_joined", []byte(player.ID))
	log.WithField("player", player.ID).Info("Player ", name, " joined")
}

func (g *Game) handleDisconnect(sess *session) {
	sess.close()

	if sess.playerID == "" {
		return
	}
	if _, ok := g.sessions[sess.playerID]; !ok {
		return
	}

	delete(g.sessions, sess.playerID)
	delete(g.pendingKeys, sess.playerID)
	g.world.RemovePlayer(sess.playerID)

	nats.Publish("player_left", []byte(sess.playerID))
	log.WithField("player", sess.playerID).Info("Player disconnected, ", len(g.sessions), " players remain")
}
