package mango

import (
	"encoding/json"
	"fmt"
)

// Action is the direction of a stock movement. The weight change recorded
// in history is always positive; the action carries the sign.
type Action string

const (
	// In moves stock into the farm pool (harvest, delivery).
	In Action = "IN"
	// Out moves stock out of the farm pool (sale, shipment).
	Out Action = "OUT"
)

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case In:
		return In, nil
	case Out:
		return Out, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

func (a Action) String() string { return string(a) }

// Sign returns +1 for In and -1 for Out, for replaying the log.
func (a Action) Sign() int {
	if a == Out {
		return -1
	}
	return 1
}

// MarshalJSON implements the json.Marshaler interface for Action.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalJSON implements the json.Unmarshaler interface for Action.
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
