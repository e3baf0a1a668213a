package game

import (
	"encoding/json"
	"fmt"
)

// UnitKind is the engine shorthand for a unit type, bound once per match from
// the configuration frame and treated as a constant afterwards.
type UnitKind string

// Positions of each unit type in the configuration's unitInformation list.
// Indices 0-2 are stationary, 3-5 mobile.
const (
	wallIndex = iota
	supportIndex
	turretIndex
	scoutIndex
	demolisherIndex
	interceptorIndex
	numUnitKinds
)

// UnitSet resolves the positional unitInformation indices into named fields so
// nothing downstream ever touches the config by index again.
type UnitSet struct {
	Wall        UnitKind // stationary shield, blocks paths
	Support     UnitKind // stationary energy generator
	Turret      UnitKind // stationary attacker
	Scout       UnitKind // fast mobile unit, the rush workhorse
	Demolisher  UnitKind // area-damage mobile unit
	Interceptor UnitKind // defensive scrambling mobile unit
}

// UnitStats is the per-kind slice of the configuration the decision core and
// the engine adapters care about.
type UnitStats struct {
	Kind        UnitKind
	Cost        float64
	StartHealth float64
	Range       float64
	DamageI     float64 // damage per hit against mobile units
	DamageF     float64 // damage per hit against stationary units
	Stationary  bool
}

// MatchConfig is the one-time match configuration: the resolved unit set plus
// stats per kind.
type MatchConfig struct {
	Units UnitSet
	stats map[UnitKind]UnitStats
	order [numUnitKinds]UnitKind
}

func (c *MatchConfig) StatsOf(kind UnitKind) (UnitStats, bool) {
	s, ok := c.stats[kind]
	return s, ok
}

// KindAt maps a wire unit-list index back to its kind. ok is false for the
// pseudo-unit indices past the real ones (removal and upgrade markers).
func (c *MatchConfig) KindAt(index int) (UnitKind, bool) {
	if index < 0 || index >= numUnitKinds {
		return "", false
	}
	return c.order[index], true
}

// Unit is a stationary unit on the board as reported by the engine.
type Unit struct {
	Kind     UnitKind
	Owner    Player
	Loc      Location
	Health   float64
	Upgraded bool
}

type Player int

const (
	Self     Player = 1
	Opponent Player = 2
)

type rawUnitInfo struct {
	Shorthand   string  `json:"shorthand"`
	Cost        float64 `json:"cost"`
	StartHealth float64 `json:"startHealth"`
	Range       float64 `json:"range"`
	DamageI     float64 `json:"damageI"`
	DamageF     float64 `json:"damageF"`
}

// ParseMatchConfig reads the configuration frame sent once at match start.
// A short or malformed unitInformation list is a hard error: every later
// decision depends on these bindings.
func ParseMatchConfig(data []byte) (*MatchConfig, error) {
	var raw struct {
		UnitInformation []rawUnitInfo `json:"unitInformation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse match config: %w", err)
	}
	if len(raw.UnitInformation) < numUnitKinds {
		return nil, fmt.Errorf("parse match config: expected at least %d unit entries, got %d",
			numUnitKinds, len(raw.UnitInformation))
	}

	cfg := &MatchConfig{stats: make(map[UnitKind]UnitStats, numUnitKinds)}
	for i, info := range raw.UnitInformation[:numUnitKinds] {
		if info.Shorthand == "" {
			return nil, fmt.Errorf("parse match config: unit %d has no shorthand", i)
		}
		kind := UnitKind(info.Shorthand)
		cfg.order[i] = kind
		cfg.stats[kind] = UnitStats{
			Kind:        kind,
			Cost:        info.Cost,
			StartHealth: info.StartHealth,
			Range:       info.Range,
			DamageI:     info.DamageI,
			DamageF:     info.DamageF,
			Stationary:  i <= turretIndex,
		}
		switch i {
		case wallIndex:
			cfg.Units.Wall = kind
		case supportIndex:
			cfg.Units.Support = kind
		case turretIndex:
			cfg.Units.Turret = kind
		case scoutIndex:
			cfg.Units.Scout = kind
		case demolisherIndex:
			cfg.Units.Demolisher = kind
		case interceptorIndex:
			cfg.Units.Interceptor = kind
		}
	}
	return cfg, nil
}
