package game

import (
	"sort"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"
)

// Snapshot builds the full-state broadcast for the current tick. Players
// and coins are sorted by id so every client sees the same ordering.
func (w *World) Snapshot() protocol.SnapshotMessage {
	snap := protocol.SnapshotMessage{
		Type:    protocol.TypeState,
		Tick:    w.Tick,
		Players: make([]protocol.PlayerSnapshot, 0, len(w.Players)),
		Coins:   make([]protocol.CoinSnapshot, 0, len(w.Coins)),
	}

	for _, p := range w.Players {
		snap.Players = append(snap.Players, protocol.PlayerSnapshot{
			ID:    p.ID,
			X:     p.X,
			Y:     p.Y,
			Score: p.Score,
		})
	}
	sort.Slice(snap.Players, func(i, j int) bool {
		return snap.Players[i].ID < snap.Players[j].ID
	})

	for _, c := range w.Coins {
		snap.Coins = append(snap.Coins, protocol.CoinSnapshot{
			ID: c.ID,
			X:  c.X,
			Y:  c.Y,
		})
	}
	sort.Slice(snap.Coins, func(i, j int) bool {
		return snap.Coins[i].ID < snap.Coins[j].ID
	})

	return snap
}
