// Package protocol defines the wire messages exchanged between the game
// server and its clients. Every websocket frame carries exactly one JSON
// message tagged with a "type" field.
package protocol

const (
	TypeJoin    = "join"
	TypeWelcome = "welcome"
	TypeInput   = "input"
	TypeState   = "state"
)

// Keys is the set of movement directions currently pressed.
type Keys struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// JoinMessage is the first message a client sends after connecting.
type JoinMessage struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// WelcomeMessage tells a client the player id the server assigned to it.
type WelcomeMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type InputMessage struct {
	Type string `json:"type"`
	Keys Keys   `json:"keys"`
}

type PlayerSnapshot struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score int     `json:"score"`
}

type CoinSnapshot struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// SnapshotMessage is the full authoritative state for one tick. Players
// are listed in ascending id order.
type SnapshotMessage struct {
	Type    string           `json:"type"`
	Tick    uint64           `json:"tick"`
	Players []PlayerSnapshot `json:"players"`
	Coins   []CoinSnapshot   `json:"coins"`
}
