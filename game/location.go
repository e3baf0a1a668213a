package game

import (
	"encoding/json"
	"fmt"
)

// Location is an (x, y) coordinate on the arena grid. It has no identity of
// its own: it is a lookup key into the engine's board state.
type Location struct {
	X int
	Y int
}

func Loc(x, y int) Location {
	return Location{X: x, Y: y}
}

func (l Location) String() string {
	return fmt.Sprintf("[%d, %d]", l.X, l.Y)
}

// The wire format carries locations as two-element arrays.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{l.X, l.Y})
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("location: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("location: expected 2 coordinates, got %d", len(pair))
	}
	l.X = int(pair[0])
	l.Y = int(pair[1])
	return nil
}

// Locations converts a list of [x, y] pairs into Locations. Convenience for
// layout tables and tests.
func Locations(pairs ...[2]int) []Location {
	locs := make([]Location, len(pairs))
	for i, p := range pairs {
		locs[i] = Location{X: p[0], Y: p[1]}
	}
	return locs
}
