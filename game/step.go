package game

import (
	"math"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"
)

// Displacement returns the per-tick movement for a set of pressed keys.
// Diagonals are the raw vector sum of both axes, deliberately not
// normalized. Client-side prediction integrates with this exact function,
// so any change here changes both sides at once.
func Displacement(keys protocol.Keys, speed float64) (dx, dy float64) {
	if keys.Up {
		dy -= speed
	}
	if keys.Down {
		dy += speed
	}
	if keys.Left {
		dx -= speed
	}
	if keys.Right {
		dx += speed
	}
	return dx, dy
}

// ClampToBounds keeps a circle of the given radius fully inside the map.
func ClampToBounds(x, y, radius float64, r Rules) (float64, float64) {
	x = math.Max(radius, math.Min(r.MapWidth-radius, x))
	y = math.Max(radius, math.Min(r.MapHeight-radius, y))
	return x, y
}

// Integrate moves every player by one tick's worth of displacement for
// its current key state.
func (w *World) Integrate(r Rules) {
	for _, p := range w.Players {
		dx, dy := Displacement(p.Keys, r.PlayerSpeed)
		p.X, p.Y = ClampToBounds(p.X+dx, p.Y+dy, r.PlayerRadius, r)
	}
}
