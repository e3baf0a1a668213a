package strategy

import (
	"rampart/engine"
	"rampart/game"
	"rampart/utils"

	"golang.org/x/exp/slices"
)

// LeastDamageSpawn scores each candidate spawn lane by the damage a mobile
// unit would soak walking its path and returns the safest one. The estimate is
// a static snapshot: turret-equivalent hits per path cell, no movement or
// return fire simulated. Ties resolve to the earliest candidate. Panics on an
// empty candidate list.
func LeastDamageSpawn(eng engine.Engine, candidates []game.Location) game.Location {
	if len(candidates) == 0 {
		panic("need at least one candidate spawn location")
	}

	cfg := eng.Config()
	turret, ok := cfg.StatsOf(cfg.Units.Turret)
	if !ok {
		panic("match config has no turret stats")
	}

	damages := make([]float64, len(candidates))
	for i, candidate := range candidates {
		total := 0.0
		for _, step := range eng.PathToEdge(candidate) {
			total += float64(len(eng.AttackersOf(step))) * turret.DamageI
		}
		damages[i] = total
	}

	least := slices.Min(damages)
	return candidates[utils.FindIndex(damages, least)]
}
