package game

// Placement is one spawn intent: Count copies of a unit kind at a location.
// Stationary kinds ignore Count.
type Placement struct {
	Kind  UnitKind
	Loc   Location
	Count int
}

// Plan is the ordered set of placement and upgrade intents accumulated over a
// turn and submitted atomically at turn end. Order is preserved as built; the
// core never reorders for cost.
type Plan struct {
	Spawns   []Placement
	Upgrades []Location
}

func (p *Plan) AddSpawn(kind UnitKind, loc Location, count int) {
	p.Spawns = append(p.Spawns, Placement{Kind: kind, Loc: loc, Count: count})
}

func (p *Plan) AddUpgrade(loc Location) {
	p.Upgrades = append(p.Upgrades, loc)
}

// DistinctSpawns collapses the spawn list to its distinct (kind, location)
// pairs, preserving first-occurrence order. Re-placement of an occupied cell
// is an engine no-op, so the distinct set is what a plan actually commits to.
func (p *Plan) DistinctSpawns() []Placement {
	type key struct {
		kind UnitKind
		loc  Location
	}
	seen := make(map[key]bool)
	var distinct []Placement
	for _, sp := range p.Spawns {
		k := key{kind: sp.Kind, loc: sp.Loc}
		if seen[k] {
			continue
		}
		seen[k] = true
		distinct = append(distinct, sp)
	}
	return distinct
}
