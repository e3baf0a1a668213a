package game

import (
	"encoding/json"
	"fmt"
)

// FrameKind distinguishes the frames the match server streams at us.
type FrameKind int

const (
	TurnFrame   FrameKind = 0 // decision point, expects a submitted plan
	ActionFrame FrameKind = 1 // one combat resolution tick
	EndFrame    FrameKind = 2 // match over
)

// PeekFrameKind reads just enough of a frame to route it.
func PeekFrameKind(data []byte) (FrameKind, error) {
	var raw struct {
		TurnInfo []float64 `json:"turnInfo"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("peek frame: %w", err)
	}
	if len(raw.TurnInfo) == 0 {
		return 0, fmt.Errorf("peek frame: missing turnInfo")
	}
	return FrameKind(raw.TurnInfo[0]), nil
}

// BreachEvent is one unit reaching an edge and damaging that side's owner.
// The owner flag names the side whose edge was hit: SelfOwned means our edge
// took the damage.
type BreachEvent struct {
	Loc       Location
	SelfOwned bool
}

// EventBatch is the parsed event feed of a single action frame.
type EventBatch struct {
	Turn     int
	Breaches []BreachEvent
}

// A breach entry on the wire is [location, damage, unitType, unitID, owner]
// with owner 1 = self, 2 = opponent.
type breach []json.RawMessage

// ParseEventBatch decodes an action frame's breach events. Malformed entries
// fail the whole batch: silently skipping one would corrupt breach ownership
// accounting downstream.
func ParseEventBatch(data []byte) (*EventBatch, error) {
	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse event batch: %w", err)
	}
	if len(raw.TurnInfo) < 2 {
		return nil, fmt.Errorf("parse event batch: short turnInfo")
	}

	batch := &EventBatch{Turn: int(raw.TurnInfo[1])}
	for i, entry := range raw.Events["breach"] {
		if len(entry) < 5 {
			return nil, fmt.Errorf("parse event batch: breach %d has %d fields, want at least 5", i, len(entry))
		}
		var loc Location
		if err := json.Unmarshal(entry[0], &loc); err != nil {
			return nil, fmt.Errorf("parse event batch: breach %d: %w", i, err)
		}
		var owner int
		if err := json.Unmarshal(entry[4], &owner); err != nil {
			return nil, fmt.Errorf("parse event batch: breach %d owner: %w", i, err)
		}
		if owner != int(Self) && owner != int(Opponent) {
			return nil, fmt.Errorf("parse event batch: breach %d has owner %d", i, owner)
		}
		batch.Breaches = append(batch.Breaches, BreachEvent{Loc: loc, SelfOwned: owner == int(Self)})
	}
	return batch, nil
}
