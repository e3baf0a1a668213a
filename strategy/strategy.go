package strategy

import (
	"rampart/config"
	"rampart/engine"
	"rampart/experiments/metrics"
	"rampart/game"

	"github.com/rs/zerolog/log"
)

// RushState is the adaptive burst policy's latch. Active starts true and is
// cleared at most once per match; AttemptedThisTurn is reset every turn.
type RushState struct {
	Active            bool
	AttemptedThisTurn bool
}

// Agent owns all decision state for one match session: the resolved unit
// bindings, the layout and policy knobs, the rush latch and the scored-on log.
type Agent struct {
	cfg    *game.MatchConfig
	units  game.UnitSet
	layout config.Layout
	policy config.Policy

	rush      RushState
	scoredOn  []game.Location
	collector metrics.Collector
}

func New(cfg *game.MatchConfig, conf config.Config) *Agent {
	return &Agent{
		cfg:       cfg,
		units:     cfg.Units,
		layout:    conf.Layout,
		policy:    conf.Policy,
		rush:      RushState{Active: true},
		collector: metrics.NewDummyCollector(),
	}
}

// SetCollector swaps in a real decision-record collector.
func (a *Agent) SetCollector(c metrics.Collector) {
	a.collector = c
}

// PlayTurn runs one full decision turn: defenses first, then the offense, then
// the atomic submit. No rollback after submission.
func (a *Agent) PlayTurn(eng engine.Engine) error {
	turn := eng.TurnNumber()
	log.Info().
		Int("turn", turn).
		Float64("structure", eng.Resource(game.Structure)).
		Float64("tempo", eng.Resource(game.Tempo)).
		Bool("rushArmed", a.rush.Active).
		Msg("playing turn")

	a.rush.AttemptedThisTurn = false
	a.collector.StartTurn(turn, eng.Resource(game.Structure), eng.Resource(game.Tempo))

	a.buildDefenses(eng)
	a.runOffense(eng)

	return eng.SubmitTurn()
}

// Rush exposes the current latch state.
func (a *Agent) Rush() RushState { return a.rush }

// ScoredOn is the locations where this agent's units have breached the
// opposing edge so far, in event order.
func (a *Agent) ScoredOn() []game.Location { return a.scoredOn }
