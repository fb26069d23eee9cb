package game

import (
	"math/rand"
	"time"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/config"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"

	"github.com/google/uuid"
)

// Rules is the per-world tuning derived from configuration. Movement
// speed is expressed in pixels per tick.
type Rules struct {
	MapWidth      float64
	MapHeight     float64
	PlayerSpeed   float64
	PlayerRadius  float64
	CoinRadius    float64
	MaxCoins      int
	SpawnInterval time.Duration
}

func RulesFromConfig(conf config.Config) Rules {
	return Rules{
		MapWidth:      conf.MapWidth,
		MapHeight:     conf.MapHeight,
		PlayerSpeed:   conf.PlayerSpeed,
		PlayerRadius:  conf.PlayerRadius,
		CoinRadius:    conf.CoinRadius,
		MaxCoins:      conf.MaxCoins,
		SpawnInterval: conf.CoinSpawnInterval,
	}
}

type Player struct {
	ID    string
	Name  string
	X, Y  float64
	Keys  protocol.Keys
	Score int
}

type Coin struct {
	ID     string
	X, Y   float64
	Radius float64
}

// World is the authoritative game state. It is owned by the game loop
// goroutine; nothing else reads or writes it.
type World struct {
	Tick    uint64
	Players map[string]*Player
	Coins   map[string]*Coin
}

func NewWorld() *World {
	return &World{
		Players: make(map[string]*Player),
		Coins:   make(map[string]*Coin),
	}
}

// SpawnCoin places a new coin at a random in-bounds position.
func (w *World) SpawnCoin(r Rules) *Coin {
	x, y := randomPoint(r, r.CoinRadius)
	coin := &Coin{
		ID:     uuid.New().String(),
		X:      x,
		Y:      y,
		Radius: r.CoinRadius,
	}
	w.Coins[coin.ID] = coin
	return coin
}

// AddPlayer creates a player with a fresh id at a random spawn point.
func (w *World) AddPlayer(name string, r Rules) *Player {
	x, y := randomPoint(r, r.PlayerRadius)
	player := &Player{
		ID:   uuid.New().String(),
		Name: name,
		X:    x,
		Y:    y,
	}
	w.Players[player.ID] = player
	return player
}

func (w *World) RemovePlayer(id string) {
	delete(w.Players, id)
}

func randomPoint(r Rules, margin float64) (float64, float64) {
	x := margin + rand.Float64()*(r.MapWidth-2*margin)
	y := margin + rand.Float64()*(r.MapHeight-2*margin)
	return x, y
}
