package engine

import (
	"rampart/game"
)

// LocalEngine is a self-contained in-memory board with the same placement
// semantics as the live match adapter. It stands in for the match server in
// tests and local experiments: enemy layouts and balances are set directly
// and the submitted plan is retained for inspection.
type LocalEngine struct {
	cfg       *game.MatchConfig
	snap      *game.Snapshot
	plan      game.Plan
	submitted *game.Plan
}

func NewLocalEngine(cfg *game.MatchConfig, turn int) *LocalEngine {
	return &LocalEngine{cfg: cfg, snap: game.NewSnapshot(cfg, turn)}
}

// SetResource sets one of our own pool balances.
func (e *LocalEngine) SetResource(kind game.ResourceKind, amount float64) {
	e.snap.SetResource(game.Self, kind, amount)
}

// PlaceEnemy drops an enemy stationary unit on the board.
func (e *LocalEngine) PlaceEnemy(kind game.UnitKind, loc game.Location) {
	stats, _ := e.cfg.StatsOf(kind)
	e.snap.PutStationary(game.Unit{Kind: kind, Owner: game.Opponent, Loc: loc, Health: stats.StartHealth})
}

// Block occupies a cell with an enemy wall, for path tests.
func (e *LocalEngine) Block(locs ...game.Location) {
	for _, loc := range locs {
		e.PlaceEnemy(e.cfg.Units.Wall, loc)
	}
}

// Submitted returns the plan handed to SubmitTurn, or nil before submission.
func (e *LocalEngine) Submitted() *game.Plan { return e.submitted }

func (e *LocalEngine) Config() *game.MatchConfig { return e.cfg }

func (e *LocalEngine) TurnNumber() int { return e.snap.Turn }

func (e *LocalEngine) Resource(kind game.ResourceKind) float64 {
	return e.snap.Resource(game.Self, kind)
}

func (e *LocalEngine) PathToEdge(start game.Location) []game.Location {
	return game.PathToEdge(e.snap, start)
}

func (e *LocalEngine) AttackersOf(loc game.Location) []game.Unit {
	return e.snap.Attackers(loc, game.Self)
}

func (e *LocalEngine) AttemptSpawn(kind game.UnitKind, locs []game.Location, count int) int {
	// Same rules as the match adapter, which embeds the snapshot the same way.
	m := MatchEngine{cfg: e.cfg, snap: e.snap}
	m.plan = e.plan
	placed := m.AttemptSpawn(kind, locs, count)
	e.plan = m.plan
	return placed
}

func (e *LocalEngine) AttemptUpgrade(locs []game.Location) int {
	m := MatchEngine{cfg: e.cfg, snap: e.snap}
	m.plan = e.plan
	upgraded := m.AttemptUpgrade(locs)
	e.plan = m.plan
	return upgraded
}

func (e *LocalEngine) SubmitTurn() error {
	plan := e.plan
	e.submitted = &plan
	e.plan = game.Plan{}
	return nil
}
