package protocol

import (
	"encoding/json"
	"fmt"
)

// PeekType reads only the "type" tag of a message so the caller can pick
// the concrete message struct to decode into.
func PeekType(data []byte) (string, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", err
	}
	if head.Type == "" {
		return "", fmt.Errorf("message has no type tag")
	}
	return head.Type, nil
}

// Decode unmarshals a full message into the given concrete type.
func Decode[T any](data []byte) (T, error) {
	var out T
	err := json.Unmarshal(data, &out)
	return out, err
}

// Encode marshals a message for the wire.
func Encode(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return data, nil
}
