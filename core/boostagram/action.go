package boostagram

import (
	"encoding/json"
	"fmt"
)

// Action classifies why a payment was sent. Values the decoder does not
// recognize map to ActionUnknown rather than failing.
type Action int

const (
	ActionUnknown Action = iota
	ActionStream
	ActionBoost
	ActionLSAT
	ActionAuto
)

func ParseAction(text string) Action {
	switch text {
	case "stream":
		return ActionStream
	case "boost":
		return ActionBoost
	case "lsat":
		return ActionLSAT
	case "auto":
		return ActionAuto
	default:
		return ActionUnknown
	}
}

func (a Action) String() string {
	switch a {
	case ActionStream:
		return "stream"
	case ActionBoost:
		return "boost"
	case ActionLSAT:
		return "lsat"
	case ActionAuto:
		return "auto"
	default:
		return "unknown"
	}
}

func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts any string. Non-string values are a type mismatch.
func (a *Action) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("action: %w", err)
	}
	*a = ParseAction(text)
	return nil
}
