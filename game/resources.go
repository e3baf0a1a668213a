package game

// ResourceKind distinguishes the two fungible pools: Tempo regenerates each
// turn and pays for mobile units, Structure pays for stationary builds and
// upgrades. Balances are engine-owned; the core only ever reads them.
type ResourceKind int

const (
	Structure ResourceKind = iota
	Tempo
)

func (r ResourceKind) String() string {
	if r == Structure {
		return "structure"
	}
	return "tempo"
}

// statsIndex maps a pool to its slot in the wire player-stats array
// [health, structure, tempo, time].
func (r ResourceKind) statsIndex() int {
	if r == Structure {
		return 1
	}
	return 2
}
