package game

import "testing"

func TestCoinAtZeroDistanceIsCollected(t *testing.T) {
	r := testRules()
	w := NewWorld()
	w.Players["p1"] = &Player{ID: "p1", X: 105, Y: 100}
	w.Coins["c1"] = &Coin{ID: "c1", X: 105, Y: 100, Radius: 10}

	collections := DetectCollections(w, r)
	if len(collections) != 1 {
		t.Fatalf("got %d collections, want 1", len(collections))
	}

	w.ApplyCollections(collections)
	if _, ok := w.Coins["c1"]; ok {
		t.Fatal("collected coin still present")
	}
	if got := w.Players["p1"].Score; got != 1 {
		t.Fatalf("score = %d, want 1", got)
	}
}

func TestBoundaryDistanceIsNotCollected(t *testing.T) {
	r := testRules()
	w := NewWorld()
	// Distance exactly PlayerRadius+CoinRadius: strictly-less-than means
	// no collection.
	w.Players["p1"] = &Player{ID: "p1", X: 100, Y: 100}
	w.Coins["c1"] = &Coin{ID: "c1", X: 120, Y: 100, Radius: 10}

	if got := DetectCollections(w, r); len(got) != 0 {
		t.Fatalf("boundary contact produced %d collections, want 0", len(got))
	}

	w.Coins["c1"].X = 119.999
	if got := DetectCollections(w, r); len(got) != 1 {
		t.Fatalf("inside boundary produced %d collections, want 1", len(got))
	}
}

func TestTieGoesToLowestPlayerID(t *testing.T) {
	r := testRules()
	w := NewWorld()
	w.Players["b"] = &Player{ID: "b", X: 100, Y: 100}
	w.Players["a"] = &Player{ID: "a", X: 100, Y: 100}
	w.Coins["c1"] = &Coin{ID: "c1", X: 100, Y: 100, Radius: 10}

	collections := DetectCollections(w, r)
	if len(collections) != 1 {
		t.Fatalf("got %d collections, want exactly 1 per coin", len(collections))
	}
	if collections[0].PlayerID != "a" {
		t.Fatalf("collector = %q, want lowest id %q", collections[0].PlayerID, "a")
	}

	w.ApplyCollections(collections)
	if w.Players["a"].Score != 1 || w.Players["b"].Score != 0 {
		t.Fatalf("scores a=%d b=%d, want a=1 b=0", w.Players["a"].Score, w.Players["b"].Score)
	}
}

func TestOnePlayerCanCollectSeveralCoins(t *testing.T) {
	r := testRules()
	w := NewWorld()
	w.Players["p1"] = &Player{ID: "p1", X: 100, Y: 100}
	w.Coins["c1"] = &Coin{ID: "c1", X: 100, Y: 100, Radius: 10}
	w.Coins["c2"] = &Coin{ID: "c2", X: 102, Y: 100, Radius: 10}

	collections := DetectCollections(w, r)
	if len(collections) != 2 {
		t.Fatalf("got %d collections, want 2", len(collections))
	}

	w.ApplyCollections(collections)
	if got := w.Players["p1"].Score; got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}
	if len(w.Coins) != 0 {
		t.Fatalf("%d coins remain, want 0", len(w.Coins))
	}
}

func TestStaleCollectionIsIgnored(t *testing.T) {
	w := NewWorld()
	w.Players["p1"] = &Player{ID: "p1"}

	w.ApplyCollections([]Collection{{PlayerID: "p1", CoinID: "gone"}})
	if got := w.Players["p1"].Score; got != 0 {
		t.Fatalf("score = %d after collecting a missing coin, want 0", got)
	}
}
