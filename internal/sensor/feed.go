// Package sensor decodes the raw packet feeds produced by the sensor
// unit.
package sensor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Packet is one raw reading: a workout kind tag plus the ordered
// values whose count and meaning depend on the kind. Data elements are
// left untyped so the dispatcher can reject non-numeric values itself.
type Packet struct {
	WorkoutType string `json:"workout_type"`
	Data        []any  `json:"data"`
}

// ParseFeed decodes a feed: a JSON array of packets. Malformed JSON
// fails the whole feed; semantically bad packets are passed through
// untouched so one of them does not kill the batch.
func ParseFeed(r io.Reader) ([]Packet, error) {
	var packets []Packet
	if err := json.NewDecoder(r).Decode(&packets); err != nil {
		return nil, fmt.Errorf("decoding packet feed: %w", err)
	}
	return packets, nil
}

// LoadFeed reads a packet feed from a file.
func LoadFeed(path string) ([]Packet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", err)
	}
	defer f.Close()
	return ParseFeed(f)
}
