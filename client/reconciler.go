// Package client is the headless client side of the game: it maintains
// the websocket session and turns authoritative snapshots into smooth
// per-frame render positions. Window setup, key capture and drawing are
// left to the caller.
package client

import (
	"sort"
	"time"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/config"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/game"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"
)

// remoteEntity interpolates one remote player between its two most
// recently known positions.
type remoteEntity struct {
	prevX, prevY     float64
	latestX, latestY float64
	elapsed          time.Duration
	score            int
}

func (e *remoteEntity) alpha(interp time.Duration) float64 {
	if interp <= 0 {
		return 1
	}
	a := float64(e.elapsed) / float64(interp)
	if a > 1 {
		a = 1
	}
	return a
}

func (e *remoteEntity) renderPos(interp time.Duration) (float64, float64) {
	a := e.alpha(interp)
	x := e.prevX + (e.latestX-e.prevX)*a
	y := e.prevY + (e.latestY-e.prevY)*a
	return x, y
}

// localEntity is the predicted local player. predicted doubles as the
// render position; each frame it is pulled toward the last authoritative
// position by a fixed fraction of the remaining gap, so corrections
// converge without ever snapping.
type localEntity struct {
	predictedX, predictedY float64
	authX, authY           float64
	score                  int
	seen                   bool
}

// RenderPlayer is one player's position as it should be drawn this frame.
type RenderPlayer struct {
	ID    string
	X, Y  float64
	Score int
	Local bool
}

// Reconciler holds all client-side render state. It is not goroutine
// safe: the render loop owns it and feeds it snapshots it polled off the
// network goroutine's handoff slot.
type Reconciler struct {
	localID        string
	interpDuration time.Duration
	gain           float64
	rules          game.Rules

	remotes map[string]*remoteEntity
	local   localEntity
	coins   []protocol.CoinSnapshot
	tick    uint64
}

func NewReconciler(localID string, conf config.Config) *Reconciler {
	return &Reconciler{
		localID:        localID,
		interpDuration: conf.InterpDuration,
		gain:           conf.CorrectionGain,
		rules:          game.RulesFromConfig(conf),
		remotes:        make(map[string]*remoteEntity),
	}
}

// ApplySnapshot folds one authoritative snapshot into the render state.
// Remote players restart their interpolation window from the position
// currently on screen, not from the previous raw target, so a late
// snapshot never causes a backwards jump.
func (r *Reconciler) ApplySnapshot(snap protocol.SnapshotMessage) {
	r.tick = snap.Tick
	r.coins = snap.Coins

	seen := make(map[string]bool, len(snap.Players))
	for _, p := range snap.Players {
		seen[p.ID] = true

		if p.ID == r.localID {
			r.local.authX, r.local.authY = p.X, p.Y
			r.local.score = p.Score
			if !r.local.seen {
				r.local.predictedX, r.local.predictedY = p.X, p.Y
				r.local.seen = true
			}
			continue
		}

		ent, ok := r.remotes[p.ID]
		if !ok {
			r.remotes[p.ID] = &remoteEntity{
				prevX: p.X, prevY: p.Y,
				latestX: p.X, latestY: p.Y,
				score: p.Score,
			}
			continue
		}

		ent.prevX, ent.prevY = ent.renderPos(r.interpDuration)
		ent.latestX, ent.latestY = p.X, p.Y
		ent.elapsed = 0
		ent.score = p.Score
	}

	for id := range r.remotes {
		if !seen[id] {
			delete(r.remotes, id)
		}
	}
}

// PredictInput advances the local player immediately by one tick's worth
// of movement, using the same displacement rule the server integrates
// with. Call it once per simulated input tick.
func (r *Reconciler) PredictInput(keys protocol.Keys) {
	dx, dy := game.Displacement(keys, r.rules.PlayerSpeed)
	r.local.predictedX, r.local.predictedY = game.ClampToBounds(
		r.local.predictedX+dx, r.local.predictedY+dy, r.rules.PlayerRadius, r.rules)
}

// AdvanceFrame moves the render state forward by one frame: remote
// interpolation timers advance by the frame's elapsed time, and the
// local position closes a fixed fraction of its gap to the server.
func (r *Reconciler) AdvanceFrame(dt time.Duration) {
	for _, ent := range r.remotes {
		ent.elapsed += dt
	}

	if r.local.seen {
		r.local.predictedX += (r.local.authX - r.local.predictedX) * r.gain
		r.local.predictedY += (r.local.authY - r.local.predictedY) * r.gain
	}
}

// Players returns this frame's draw positions, sorted by id, local last.
func (r *Reconciler) Players() []RenderPlayer {
	out := make([]RenderPlayer, 0, len(r.remotes)+1)
	for id, ent := range r.remotes {
		x, y := ent.renderPos(r.interpDuration)
		out = append(out, RenderPlayer{ID: id, X: x, Y: y, Score: ent.score})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if r.local.seen {
		out = append(out, RenderPlayer{
			ID:    r.localID,
			X:     r.local.predictedX,
			Y:     r.local.predictedY,
			Score: r.local.score,
			Local: true,
		})
	}
	return out
}

// Coins returns the coins from the latest applied snapshot.
func (r *Reconciler) Coins() []protocol.CoinSnapshot {
	return r.coins
}

// Tick returns the tick of the latest applied snapshot.
func (r *Reconciler) Tick() uint64 {
	return r.tick
}

// Score returns the local player's authoritative score.
func (r *Reconciler) Score() int {
	return r.local.score
}
