package engine

import (
	"fmt"

	"rampart/communication"
	"rampart/game"

	"github.com/rs/zerolog/log"
)

// MatchEngine adapts one turn-frame snapshot from the match server into the
// Engine contract. Placements validate against and mutate the local snapshot
// (so later queries within the turn see them) while accumulating the plan;
// SubmitTurn hands the plan to the communicator.
type MatchEngine struct {
	cfg       *game.MatchConfig
	snap      *game.Snapshot
	comm      communication.Communicator
	plan      game.Plan
	submitted bool
}

func NewMatchEngine(cfg *game.MatchConfig, snap *game.Snapshot, comm communication.Communicator) *MatchEngine {
	return &MatchEngine{cfg: cfg, snap: snap, comm: comm}
}

func (e *MatchEngine) Config() *game.MatchConfig { return e.cfg }

func (e *MatchEngine) TurnNumber() int { return e.snap.Turn }

func (e *MatchEngine) Resource(kind game.ResourceKind) float64 {
	return e.snap.Resource(game.Self, kind)
}

func (e *MatchEngine) PathToEdge(start game.Location) []game.Location {
	return game.PathToEdge(e.snap, start)
}

func (e *MatchEngine) AttackersOf(loc game.Location) []game.Unit {
	return e.snap.Attackers(loc, game.Self)
}

func (e *MatchEngine) AttemptSpawn(kind game.UnitKind, locs []game.Location, count int) int {
	stats, ok := e.cfg.StatsOf(kind)
	if !ok || count < 1 {
		return 0
	}
	pool := game.Tempo
	if stats.Stationary {
		pool = game.Structure
		count = 1
	}

	placed := 0
	for _, loc := range locs {
		if !e.spawnable(stats, loc) {
			continue
		}
		n := 0
		for ; n < count && e.snap.Resource(game.Self, pool) >= stats.Cost; n++ {
			e.snap.Spend(game.Self, pool, stats.Cost)
		}
		if n == 0 {
			continue
		}
		if stats.Stationary {
			e.snap.PutStationary(game.Unit{Kind: kind, Owner: game.Self, Loc: loc, Health: stats.StartHealth})
		}
		e.plan.AddSpawn(kind, loc, n)
		placed += n
	}
	return placed
}

// spawnable checks the engine-enforced placement rules: in the arena, on our
// own half, stationary units need an empty cell, mobile units an edge cell.
func (e *MatchEngine) spawnable(stats game.UnitStats, loc game.Location) bool {
	if !game.InArenaBounds(loc) || loc.Y >= game.HalfArena {
		return false
	}
	if e.snap.Blocked(loc) {
		return false
	}
	if !stats.Stationary {
		return game.OnEdge(loc, game.BottomLeft) || game.OnEdge(loc, game.BottomRight)
	}
	return true
}

func (e *MatchEngine) AttemptUpgrade(locs []game.Location) int {
	upgraded := 0
	for _, loc := range locs {
		unit, ok := e.snap.StationaryAt(loc)
		if !ok || unit.Owner != game.Self || unit.Upgraded {
			continue
		}
		stats, ok := e.cfg.StatsOf(unit.Kind)
		if !ok || e.snap.Resource(game.Self, game.Structure) < stats.Cost {
			continue
		}
		e.snap.Spend(game.Self, game.Structure, stats.Cost)
		e.snap.MarkUpgraded(loc)
		e.plan.AddUpgrade(loc)
		upgraded++
	}
	return upgraded
}

func (e *MatchEngine) SubmitTurn() error {
	if e.submitted {
		return fmt.Errorf("turn %d already submitted", e.snap.Turn)
	}
	e.submitted = true
	log.Debug().Int("turn", e.snap.Turn).
		Int("spawns", len(e.plan.Spawns)).
		Int("upgrades", len(e.plan.Upgrades)).
		Msg("submitting turn")
	return e.comm.SendTurn(e.cfg.Units, &e.plan)
}

// Plan exposes the accumulated plan, mainly for diagnostics.
func (e *MatchEngine) Plan() *game.Plan { return &e.plan }
