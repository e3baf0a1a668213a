package game

// The arena is a 28x28 grid clipped to a diamond. The bottom half belongs to
// this player, the top half to the opponent, and mobile units enter at one of
// the four diagonal edges and walk toward the opposite one.

const (
	ArenaSize = 28
	HalfArena = ArenaSize / 2
)

type Edge int

const (
	TopRight Edge = iota
	TopLeft
	BottomLeft
	BottomRight
)

func (e Edge) String() string {
	switch e {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// InArenaBounds reports whether a location lies inside the diamond. Row y of
// the bottom half spans x in [13-y, 14+y]; the top half mirrors it.
func InArenaBounds(loc Location) bool {
	if loc.X < 0 || loc.X >= ArenaSize || loc.Y < 0 || loc.Y >= ArenaSize {
		return false
	}
	if loc.Y < HalfArena {
		return loc.X >= HalfArena-1-loc.Y && loc.X <= HalfArena+loc.Y
	}
	mirrored := ArenaSize - 1 - loc.Y
	return loc.X >= HalfArena-1-mirrored && loc.X <= HalfArena+mirrored
}

// EdgeLocations returns the 14 cells of a diagonal edge, corner first.
func EdgeLocations(e Edge) []Location {
	locs := make([]Location, HalfArena)
	for n := 0; n < HalfArena; n++ {
		switch e {
		case TopRight:
			locs[n] = Location{X: HalfArena + n, Y: ArenaSize - 1 - n}
		case TopLeft:
			locs[n] = Location{X: HalfArena - 1 - n, Y: ArenaSize - 1 - n}
		case BottomLeft:
			locs[n] = Location{X: HalfArena - 1 - n, Y: n}
		case BottomRight:
			locs[n] = Location{X: HalfArena + n, Y: n}
		}
	}
	return locs
}

// OnEdge reports whether loc sits on the given edge.
func OnEdge(loc Location, e Edge) bool {
	for _, l := range EdgeLocations(e) {
		if l == loc {
			return true
		}
	}
	return false
}

// TargetEdge returns the edge a mobile unit spawned at start walks toward:
// always the diagonally opposite one.
func TargetEdge(start Location) Edge {
	bottom := start.Y < HalfArena
	left := start.X < HalfArena
	switch {
	case bottom && left:
		return TopRight
	case bottom && !left:
		return TopLeft
	case !bottom && left:
		return BottomRight
	default:
		return BottomLeft
	}
}
