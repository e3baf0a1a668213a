package engine

import "rampart/game"

// Engine is the decision core's entire view of the match: read-only state
// queries plus best-effort mutating placement calls. Placement never errors -
// an invalid, occupied or unaffordable target is silently skipped and the
// returned count makes the result observable.
type Engine interface {
	Config() *game.MatchConfig
	TurnNumber() int
	Resource(kind game.ResourceKind) float64

	// PathToEdge returns the route a mobile unit spawned at start would
	// walk toward the opposite edge, start included.
	PathToEdge(start game.Location) []game.Location
	// AttackersOf returns the enemy stationary units currently able to
	// damage a mobile unit standing at loc.
	AttackersOf(loc game.Location) []game.Unit

	// AttemptSpawn tries to place count units of kind at each location and
	// returns how many were actually placed.
	AttemptSpawn(kind game.UnitKind, locs []game.Location, count int) int
	// AttemptUpgrade tries to upgrade the unit at each location and
	// returns how many upgrades took.
	AttemptUpgrade(locs []game.Location) int

	// SubmitTurn finalizes the accumulated plan. Exactly once per turn.
	SubmitTurn() error
}
