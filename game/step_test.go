package game

import (
	"testing"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"
)

func testRules() Rules {
	return Rules{
		MapWidth:     800,
		MapHeight:    600,
		PlayerSpeed:  5,
		PlayerRadius: 10,
		CoinRadius:   10,
		MaxCoins:     5,
	}
}

func TestRightForOneTickMovesBySpeed(t *testing.T) {
	r := testRules()
	w := NewWorld()
	w.Players["p1"] = &Player{ID: "p1", X: 100, Y: 100, Keys: protocol.Keys{Right: true}}

	w.Integrate(r)

	p := w.Players["p1"]
	if p.X != 105 || p.Y != 100 {
		t.Fatalf("position after one tick = (%v, %v), want (105, 100)", p.X, p.Y)
	}
}

func TestNoKeysNoMovement(t *testing.T) {
	r := testRules()
	w := NewWorld()
	w.Players["p1"] = &Player{ID: "p1", X: 100, Y: 100}

	w.Integrate(r)

	p := w.Players["p1"]
	if p.X != 100 || p.Y != 100 {
		t.Fatalf("position moved without input: (%v, %v)", p.X, p.Y)
	}
}

func TestDiagonalIsVectorSum(t *testing.T) {
	r := testRules()
	w := NewWorld()
	w.Players["p1"] = &Player{ID: "p1", X: 100, Y: 100, Keys: protocol.Keys{Up: true, Right: true}}

	w.Integrate(r)

	// Both axes move the full per-tick speed; no diagonal normalization.
	p := w.Players["p1"]
	if p.X != 105 || p.Y != 95 {
		t.Fatalf("diagonal position = (%v, %v), want (105, 95)", p.X, p.Y)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	dx, dy := Displacement(protocol.Keys{Left: true, Right: true, Up: true, Down: true}, 5)
	if dx != 0 || dy != 0 {
		t.Fatalf("opposing keys displacement = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestClampAtMapBounds(t *testing.T) {
	r := testRules()
	w := NewWorld()
	w.Players["p1"] = &Player{ID: "p1", X: r.MapWidth - 12, Y: 11, Keys: protocol.Keys{Right: true, Up: true}}

	for i := 0; i < 5; i++ {
		w.Integrate(r)
	}

	p := w.Players["p1"]
	if p.X != r.MapWidth-r.PlayerRadius {
		t.Fatalf("x = %v, want clamped to %v", p.X, r.MapWidth-r.PlayerRadius)
	}
	if p.Y != r.PlayerRadius {
		t.Fatalf("y = %v, want clamped to %v", p.Y, r.PlayerRadius)
	}
}
