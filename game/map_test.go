package game

import "testing"

func TestInArenaBounds(t *testing.T) {
	inside := []Location{
		{13, 0}, {14, 0}, {0, 13}, {27, 13}, {0, 14}, {27, 14}, {13, 27}, {14, 27}, {13, 13},
	}
	for _, loc := range inside {
		if !InArenaBounds(loc) {
			t.Errorf("expected %v to be inside the arena", loc)
		}
	}

	outside := []Location{
		{12, 0}, {15, 0}, {0, 12}, {27, 12}, {12, 27}, {15, 27}, {-1, 13}, {28, 14}, {13, -1}, {13, 28},
	}
	for _, loc := range outside {
		if InArenaBounds(loc) {
			t.Errorf("expected %v to be outside the arena", loc)
		}
	}
}

func TestEdgeLocations(t *testing.T) {
	for _, e := range []Edge{TopRight, TopLeft, BottomLeft, BottomRight} {
		locs := EdgeLocations(e)
		if len(locs) != HalfArena {
			t.Fatalf("edge %v: expected %d locations, got %d", e, HalfArena, len(locs))
		}
		for _, loc := range locs {
			if !InArenaBounds(loc) {
				t.Errorf("edge %v location %v is outside the arena", e, loc)
			}
		}
	}

	if got := EdgeLocations(BottomLeft)[0]; got != Loc(13, 0) {
		t.Errorf("bottom-left edge should start at [13, 0], got %v", got)
	}
	if got := EdgeLocations(BottomRight)[13]; got != Loc(27, 13) {
		t.Errorf("bottom-right edge should end at [27, 13], got %v", got)
	}
	if got := EdgeLocations(TopRight)[0]; got != Loc(14, 27) {
		t.Errorf("top-right edge should start at [14, 27], got %v", got)
	}
}

func TestTargetEdge(t *testing.T) {
	cases := []struct {
		start Location
		want  Edge
	}{
		{Loc(11, 2), TopRight},
		{Loc(16, 2), TopLeft},
		{Loc(2, 16), BottomRight},
		{Loc(20, 20), BottomLeft},
	}
	for _, c := range cases {
		if got := TargetEdge(c.start); got != c.want {
			t.Errorf("TargetEdge(%v) = %v, want %v", c.start, got, c.want)
		}
	}
}

func TestOnEdge(t *testing.T) {
	if !OnEdge(Loc(11, 2), BottomLeft) {
		t.Error("[11, 2] should be on the bottom-left edge")
	}
	if OnEdge(Loc(11, 3), BottomLeft) {
		t.Error("[11, 3] should not be on an edge")
	}
}
