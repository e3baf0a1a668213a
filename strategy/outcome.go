package strategy

import (
	"rampart/game"

	"github.com/rs/zerolog/log"
)

// OnEventBatch consumes one action-frame event batch. Batches arrive
// out-of-band between decision turns, potentially many per turn; each is
// self-contained and the took-damage flag resets per batch.
//
// The owner flag reads as the defending side: a self-owned breach means our
// edge was hit this frame, an opponent-owned one means we scored on them.
// When a committed rush is followed by a damage-free batch the burst policy
// disarms for the rest of the match. That rewards the opponent absorbing the
// rush without retaliating, which is the inherited behavior; it is kept
// exactly as-is rather than inverted.
func (a *Agent) OnEventBatch(batch *game.EventBatch) {
	tookDamage := false
	for _, breach := range batch.Breaches {
		if breach.SelfOwned {
			tookDamage = true
			continue
		}
		a.scoredOn = append(a.scoredOn, breach.Loc)
		a.collector.AddBreach(breach.Loc)
		log.Debug().Stringer("location", breach.Loc).Int("total", len(a.scoredOn)).
			Msg("scored on opponent edge")
	}

	if a.rush.AttemptedThisTurn && !tookDamage {
		if a.rush.Active {
			log.Info().Int("turn", batch.Turn).Msg("rush policy disarmed")
		}
		a.rush.Active = false
	}
}
