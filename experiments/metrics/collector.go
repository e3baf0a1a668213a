package metrics

import "rampart/game"

// TurnRecord captures one decision turn for offline analysis: what we held,
// whether we rushed and where, and the running scored-on count.
type TurnRecord struct {
	Turn             int
	StructureBalance float64
	TempoBalance     float64
	RushAttempted    bool
	RushLane         game.Location
	ScoredOn         int // cumulative breaches scored on the opponent
}

type Collector interface {
	StartTurn(turn int, structure, tempo float64)
	MarkRush(lane game.Location)
	AddBreach(loc game.Location)
	Records() []TurnRecord
}

type collector struct {
	records []TurnRecord
	current *TurnRecord
	scored  int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) StartTurn(turn int, structure, tempo float64) {
	c.flush()
	c.current = &TurnRecord{
		Turn:             turn,
		StructureBalance: structure,
		TempoBalance:     tempo,
		ScoredOn:         c.scored,
	}
}

func (c *collector) MarkRush(lane game.Location) {
	if c.current == nil {
		return
	}
	c.current.RushAttempted = true
	c.current.RushLane = lane
}

// AddBreach is called from action frames, which land after the turn's record
// was started; the count sticks to the turn in flight.
func (c *collector) AddBreach(loc game.Location) {
	c.scored++
	if c.current != nil {
		c.current.ScoredOn = c.scored
	}
}

func (c *collector) Records() []TurnRecord {
	c.flush()
	return c.records
}

func (c *collector) flush() {
	if c.current != nil {
		c.records = append(c.records, *c.current)
		c.current = nil
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) StartTurn(turn int, structure, tempo float64) {}
func (d *dummyCollector) MarkRush(lane game.Location)                  {}
func (d *dummyCollector) AddBreach(loc game.Location)                  {}
func (d *dummyCollector) Records() []TurnRecord                        { return nil }
