package game

// Idealized pathing for mobile units: breadth-first over unblocked arena
// cells toward the diagonally opposite edge. This answers the path-to-edge
// query the decision core relies on; it does not simulate combat along the
// way. Deterministic for a fixed snapshot.

// step order is fixed so path choice never depends on map iteration order.
var steps = [4]Location{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// PathToEdge returns the route a mobile unit spawned at start would walk,
// start included. If the target edge is unreachable the path ends at the
// reachable cell with the most progress toward the edge (where the unit
// self-destructs). A blocked or out-of-bounds start yields nil.
func PathToEdge(s *Snapshot, start Location) []Location {
	if !InArenaBounds(start) || s.Blocked(start) {
		return nil
	}
	target := TargetEdge(start)

	dist := edgeDistances(s, target)
	if _, reachable := dist[start]; reachable {
		return walkToEdge(s, start, target, dist)
	}
	return walkToDeepest(s, start, target)
}

// edgeDistances runs a reverse breadth-first search from every open cell of
// the target edge.
func edgeDistances(s *Snapshot, target Edge) map[Location]int {
	dist := make(map[Location]int)
	var frontier []Location
	for _, loc := range EdgeLocations(target) {
		if !s.Blocked(loc) {
			dist[loc] = 0
			frontier = append(frontier, loc)
		}
	}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, d := range steps {
			next := Location{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !InArenaBounds(next) || s.Blocked(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			frontier = append(frontier, next)
		}
	}
	return dist
}

// walkToEdge descends the distance field, breaking ties by preferring
// vertical progress toward the target edge, then horizontal.
func walkToEdge(s *Snapshot, start Location, target Edge, dist map[Location]int) []Location {
	vy, vx := 1, 1
	if target == BottomLeft || target == BottomRight {
		vy = -1
	}
	if target == TopLeft || target == BottomLeft {
		vx = -1
	}
	preferred := [4]Location{{X: 0, Y: vy}, {X: vx, Y: 0}, {X: 0, Y: -vy}, {X: -vx, Y: 0}}

	path := []Location{start}
	cur := start
	for dist[cur] > 0 {
		for _, d := range preferred {
			next := Location{X: cur.X + d.X, Y: cur.Y + d.Y}
			if nd, ok := dist[next]; ok && nd == dist[cur]-1 {
				cur = next
				break
			}
		}
		path = append(path, cur)
	}
	return path
}

// progress measures how deep a cell sits toward an edge; every cell of the
// edge itself shares the maximum value.
func progress(loc Location, target Edge) int {
	switch target {
	case TopRight:
		return loc.X + loc.Y
	case TopLeft:
		return loc.Y - loc.X
	case BottomRight:
		return loc.X - loc.Y
	default:
		return -(loc.X + loc.Y)
	}
}

// walkToDeepest handles the walled-in case: forward search for the reachable
// cell with the most edge progress, then the path to it.
func walkToDeepest(s *Snapshot, start Location, target Edge) []Location {
	parent := map[Location]Location{start: start}
	frontier := []Location{start}
	best := start
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if progress(cur, target) > progress(best, target) {
			best = cur
		}
		for _, d := range steps {
			next := Location{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !InArenaBounds(next) || s.Blocked(next) {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			frontier = append(frontier, next)
		}
	}

	var reversed []Location
	for cur := best; ; cur = parent[cur] {
		reversed = append(reversed, cur)
		if cur == start {
			break
		}
	}
	path := make([]Location, len(reversed))
	for i, loc := range reversed {
		path[len(reversed)-1-i] = loc
	}
	return path
}
