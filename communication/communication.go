package communication

import "rampart/game"

// Communicator abstracts the channel between the agent and the match server.
// The server streams one JSON frame per line (configuration first, then turn
// and action frames); the agent answers each turn frame with its plan.
type Communicator interface {
	ReadFrame() ([]byte, error)
	SendTurn(units game.UnitSet, plan *game.Plan) error
}
