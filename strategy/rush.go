package strategy

import (
	"rampart/engine"
	"rampart/game"

	"github.com/rs/zerolog/log"
)

// runOffense covers the mobile side of the turn: the standing interceptor
// posts, then the rush burst when the tempo pool has built up past the
// turn-scaled threshold.
func (a *Agent) runOffense(eng engine.Engine) {
	turn := eng.TurnNumber()

	if turn == 1 || turn > a.policy.HarassFromTurn {
		for _, post := range a.layout.InterceptorPosts {
			eng.AttemptSpawn(a.units.Interceptor, []game.Location{post}, 1)
		}
	}

	// Threshold grows every ten turns so late-game bursts are bigger.
	increment := turn/10 + 5
	// The comparison runs whether or not the rush latch is still armed;
	// the latch records the opponent's reaction but never gates the burst.
	if eng.Resource(game.Tempo) > float64(2*increment) {
		lane := LeastDamageSpawn(eng, a.layout.RushLanes)
		sent := eng.AttemptSpawn(a.units.Scout, []game.Location{lane}, a.policy.RushBurst)
		a.rush.AttemptedThisTurn = true
		a.collector.MarkRush(lane)
		log.Info().
			Int("turn", turn).
			Stringer("lane", lane).
			Int("sent", sent).
			Msg("rush committed")
	}
}
