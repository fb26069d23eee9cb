package game

import (
	"math"
	"sort"
)

// Collection records one coin being picked up by one player.
type Collection struct {
	PlayerID string
	CoinID   string
}

// DetectCollections reports, for every coin, the player collecting it
// this tick, if any. A coin is collected when the distance between
// centers is strictly below the combined radii; a player exactly on the
// boundary does not collect. At most one collection fires per coin per
// tick, and ties between overlapping players go to the lexicographically
// lowest player id so the outcome never depends on map iteration order.
func DetectCollections(w *World, r Rules) []Collection {
	coinIDs := make([]string, 0, len(w.Coins))
	for id := range w.Coins {
		coinIDs = append(coinIDs, id)
	}
	sort.Strings(coinIDs)

	var collections []Collection
	for _, coinID := range coinIDs {
		coin := w.Coins[coinID]
		reach := r.PlayerRadius + coin.Radius

		collector := ""
		for id, p := range w.Players {
			if math.Hypot(p.X-coin.X, p.Y-coin.Y) >= reach {
				continue
			}
			if collector == "" || id < collector {
				collector = id
			}
		}
		if collector != "" {
			collections = append(collections, Collection{PlayerID: collector, CoinID: coinID})
		}
	}

	return collections
}

// ApplyCollections removes each collected coin and credits its collector
// with one point. Both changes land within the same tick.
func (w *World) ApplyCollections(collections []Collection) {
	for _, c := range collections {
		if _, ok := w.Coins[c.CoinID]; !ok {
			continue
		}
		player, ok := w.Players[c.PlayerID]
		if !ok {
			continue
		}
		delete(w.Coins, c.CoinID)
		player.Score++
	}
}
