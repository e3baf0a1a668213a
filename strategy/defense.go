package strategy

import (
	"rampart/engine"
	"rampart/game"
)

// buildDefenses runs the fixed stationary schedule. Every call is best-effort:
// the engine skips anything occupied or unaffordable, so re-issuing the whole
// schedule each turn converges on the full layout as resources allow.
func (a *Agent) buildDefenses(eng engine.Engine) {
	// Baseline rebuilt unconditionally every turn.
	eng.AttemptSpawn(a.units.Turret, a.layout.CoreTurrets, 1)
	eng.AttemptSpawn(a.units.Wall, a.layout.CoreWalls, 1)

	// The primary generator is cheap and always worth holding.
	eng.AttemptSpawn(a.units.Support, firstN(a.layout.GeneratorLine, 1), 1)

	eng.AttemptSpawn(a.units.Turret, firstN(a.layout.SecondaryTurrets, a.policy.SecondaryBaseline), 1)

	// Generator expansion only once the structure pool is comfortable, and
	// only the short tranche in the early game.
	if eng.Resource(game.Structure) >= a.policy.StructureReserve {
		if eng.TurnNumber() < a.policy.RampUntilTurn {
			eng.AttemptSpawn(a.units.Support, firstN(a.layout.GeneratorLine, a.policy.GeneratorRamp), 1)
		} else {
			eng.AttemptSpawn(a.units.Support, a.layout.GeneratorLine, 1)
		}
	}

	// Full secondary ring; the leading cells were already placed above and
	// no-op here.
	eng.AttemptSpawn(a.units.Turret, a.layout.SecondaryTurrets, 1)

	// Upgrade priority: walls, then the turret rings. Cells that never got
	// built simply no-op.
	eng.AttemptUpgrade(a.layout.WallUpgrades)
	eng.AttemptUpgrade(a.layout.SecondaryTurrets)
	eng.AttemptUpgrade(a.layout.CoreTurrets)
	if eng.Resource(game.Structure) >= a.policy.StructureReserve {
		eng.AttemptUpgrade(a.layout.GeneratorLine)
	}
}

func firstN(locs []game.Location, n int) []game.Location {
	if n > len(locs) {
		n = len(locs)
	}
	return locs[:n]
}
