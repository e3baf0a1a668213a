package game

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the parsed per-turn board state: who stands where, how much each
// side holds in each pool, and the turn counter. It is the engine-reported
// truth the decision core queries; the core never mutates it directly.
type Snapshot struct {
	cfg *MatchConfig

	Turn        int
	MyHealth    float64
	EnemyHealth float64

	balances   map[Player][2]float64
	stationary map[Location]Unit
}

// NewSnapshot builds an empty board, used by the local engine and tests.
func NewSnapshot(cfg *MatchConfig, turn int) *Snapshot {
	return &Snapshot{
		cfg:        cfg,
		Turn:       turn,
		balances:   map[Player][2]float64{Self: {}, Opponent: {}},
		stationary: make(map[Location]Unit),
	}
}

func (s *Snapshot) Config() *MatchConfig { return s.cfg }

func (s *Snapshot) Resource(p Player, r ResourceKind) float64 {
	return s.balances[p][r]
}

func (s *Snapshot) SetResource(p Player, r ResourceKind, amount float64) {
	b := s.balances[p]
	b[r] = amount
	s.balances[p] = b
}

// Spend deducts from a pool, clamping at zero. The engine reports balances as
// non-negative values and placement validation happens before spending.
func (s *Snapshot) Spend(p Player, r ResourceKind, amount float64) {
	b := s.balances[p]
	b[r] -= amount
	if b[r] < 0 {
		b[r] = 0
	}
	s.balances[p] = b
}

func (s *Snapshot) StationaryAt(loc Location) (Unit, bool) {
	u, ok := s.stationary[loc]
	return u, ok
}

func (s *Snapshot) Blocked(loc Location) bool {
	_, ok := s.stationary[loc]
	return ok
}

func (s *Snapshot) PutStationary(u Unit) {
	s.stationary[u.Loc] = u
}

func (s *Snapshot) MarkUpgraded(loc Location) {
	if u, ok := s.stationary[loc]; ok {
		u.Upgraded = true
		s.stationary[loc] = u
	}
}

// Attackers returns the given player's opponent's stationary units able to hit
// a mobile unit standing at loc: anything with nonzero mobile damage whose
// attack range covers the cell.
func (s *Snapshot) Attackers(loc Location, target Player) []Unit {
	var attackers []Unit
	for _, u := range s.stationary {
		if u.Owner == target {
			continue
		}
		stats, ok := s.cfg.StatsOf(u.Kind)
		if !ok || stats.DamageI <= 0 {
			continue
		}
		dx := float64(u.Loc.X - loc.X)
		dy := float64(u.Loc.Y - loc.Y)
		if dx*dx+dy*dy <= stats.Range*stats.Range {
			attackers = append(attackers, u)
		}
	}
	return attackers
}

type rawState struct {
	TurnInfo []float64           `json:"turnInfo"`
	P1Stats  []float64           `json:"p1Stats"`
	P2Stats  []float64           `json:"p2Stats"`
	P1Units  [][][]any           `json:"p1Units"`
	P2Units  [][][]any           `json:"p2Units"`
	Events   map[string][]breach `json:"events"`
}

// ParseSnapshot decodes a turn frame into a queryable board. Any structural
// problem is a hard error rather than a partial state.
func ParseSnapshot(cfg *MatchConfig, data []byte) (*Snapshot, error) {
	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if len(raw.TurnInfo) < 2 {
		return nil, fmt.Errorf("parse snapshot: short turnInfo")
	}
	if len(raw.P1Stats) < 3 || len(raw.P2Stats) < 3 {
		return nil, fmt.Errorf("parse snapshot: short player stats")
	}

	s := NewSnapshot(cfg, int(raw.TurnInfo[1]))
	s.MyHealth = raw.P1Stats[0]
	s.EnemyHealth = raw.P2Stats[0]
	for _, r := range []ResourceKind{Structure, Tempo} {
		s.SetResource(Self, r, raw.P1Stats[r.statsIndex()])
		s.SetResource(Opponent, r, raw.P2Stats[r.statsIndex()])
	}

	if err := s.loadUnits(raw.P1Units, Self); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := s.loadUnits(raw.P2Units, Opponent); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return s, nil
}

// Wire unit lists are indexed by unit type; entries past the real kinds are
// the removal and upgrade marker lists.
const upgradeMarkerIndex = numUnitKinds + 1

func (s *Snapshot) loadUnits(lists [][][]any, owner Player) error {
	for index, entries := range lists {
		kind, real := s.cfg.KindAt(index)
		for _, entry := range entries {
			loc, health, err := parseUnitEntry(entry)
			if err != nil {
				return fmt.Errorf("player %d unit list %d: %w", owner, index, err)
			}
			switch {
			case real:
				stats, _ := s.cfg.StatsOf(kind)
				if !stats.Stationary {
					continue // mobile units are transient between frames
				}
				s.PutStationary(Unit{Kind: kind, Owner: owner, Loc: loc, Health: health})
			case index == upgradeMarkerIndex:
				s.MarkUpgraded(loc)
			}
		}
	}
	return nil
}

func parseUnitEntry(entry []any) (Location, float64, error) {
	if len(entry) < 3 {
		return Location{}, 0, fmt.Errorf("unit entry has %d fields, want at least 3", len(entry))
	}
	x, xok := entry[0].(float64)
	y, yok := entry[1].(float64)
	health, hok := entry[2].(float64)
	if !xok || !yok || !hok {
		return Location{}, 0, fmt.Errorf("unit entry has non-numeric coordinates")
	}
	return Location{X: int(x), Y: int(y)}, health, nil
}
