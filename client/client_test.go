package client

import (
	"testing"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/protocol"
)

func TestPollReturnsNothingWhenIdle(t *testing.T) {
	c := &Client{latest: make(chan protocol.SnapshotMessage, 1)}

	if _, ok := c.PollSnapshot(); ok {
		t.Fatal("poll reported a snapshot on an idle client")
	}
}

func TestOfferReplacesUnreadSnapshot(t *testing.T) {
	c := &Client{latest: make(chan protocol.SnapshotMessage, 1)}

	// Three snapshots arrive before the render loop polls: only the
	// newest survives, older ones are replaced rather than queued.
	c.offer(protocol.SnapshotMessage{Tick: 1})
	c.offer(protocol.SnapshotMessage{Tick: 2})
	c.offer(protocol.SnapshotMessage{Tick: 3})

	snap, ok := c.PollSnapshot()
	if !ok {
		t.Fatal("no snapshot available")
	}
	if snap.Tick != 3 {
		t.Fatalf("polled tick %d, want the newest (3)", snap.Tick)
	}

	if _, ok := c.PollSnapshot(); ok {
		t.Fatal("stale snapshot left behind after poll")
	}
}

func TestOfferThenPollAlternating(t *testing.T) {
	c := &Client{latest: make(chan protocol.SnapshotMessage, 1)}

	for tick := uint64(1); tick <= 5; tick++ {
		c.offer(protocol.SnapshotMessage{Tick: tick})
		snap, ok := c.PollSnapshot()
		if !ok || snap.Tick != tick {
			t.Fatalf("poll after offer = (%v, %v), want tick %d", snap.Tick, ok, tick)
		}
	}
}
