package engine

import (
	"testing"

	"rampart/game"

	"github.com/stretchr/testify/require"
)

const testConfigJSON = `{
	"unitInformation": [
		{"shorthand": "FF", "cost": 1, "startHealth": 60},
		{"shorthand": "EF", "cost": 4, "startHealth": 30, "range": 3.5},
		{"shorthand": "DF", "cost": 2, "startHealth": 75, "range": 3.5, "damageI": 4, "damageF": 4},
		{"shorthand": "PI", "cost": 1, "startHealth": 15},
		{"shorthand": "EI", "cost": 3, "startHealth": 5},
		{"shorthand": "SI", "cost": 1, "startHealth": 40, "range": 4.5, "damageI": 10}
	]
}`

func testMatchConfig(t *testing.T) *game.MatchConfig {
	t.Helper()
	cfg, err := game.ParseMatchConfig([]byte(testConfigJSON))
	require.NoError(t, err)
	return cfg
}

type fakeComm struct {
	sent  []*game.Plan
	units game.UnitSet
}

func (f *fakeComm) ReadFrame() ([]byte, error) { return nil, nil }

func (f *fakeComm) SendTurn(units game.UnitSet, plan *game.Plan) error {
	f.units = units
	f.sent = append(f.sent, plan)
	return nil
}

func testMatchEngine(t *testing.T, turn int, structure, tempo float64) (*MatchEngine, *fakeComm) {
	cfg := testMatchConfig(t)
	snap := game.NewSnapshot(cfg, turn)
	snap.SetResource(game.Self, game.Structure, structure)
	snap.SetResource(game.Self, game.Tempo, tempo)
	comm := &fakeComm{}
	return NewMatchEngine(cfg, snap, comm), comm
}

func TestMatchEngineAttemptSpawn(t *testing.T) {
	t.Run("places stationary units and deducts structure", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 10, 0)

		placed := eng.AttemptSpawn(eng.Config().Units.Wall, game.Locations([2]int{5, 11}, [2]int{6, 11}), 1)

		require.Equal(t, 2, placed)
		require.Equal(t, 8.0, eng.Resource(game.Structure), "Two walls at cost 1 each")
	})

	t.Run("occupied cells silently no-op", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 10, 0)
		locs := game.Locations([2]int{5, 11})

		require.Equal(t, 1, eng.AttemptSpawn(eng.Config().Units.Wall, locs, 1))
		require.Equal(t, 0, eng.AttemptSpawn(eng.Config().Units.Wall, locs, 1),
			"Re-placing an occupied cell should be a no-op")
		require.Equal(t, 9.0, eng.Resource(game.Structure), "No-op placement must not spend")
	})

	t.Run("unaffordable placements are skipped", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 3, 0)

		placed := eng.AttemptSpawn(eng.Config().Units.Turret,
			game.Locations([2]int{5, 10}, [2]int{22, 10}), 1)

		require.Equal(t, 1, placed, "Only one turret at cost 2 is affordable with 3 structure")
	})

	t.Run("rejects the opponent half and off-arena cells", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 10, 0)

		require.Equal(t, 0, eng.AttemptSpawn(eng.Config().Units.Wall, game.Locations([2]int{13, 14}), 1))
		require.Equal(t, 0, eng.AttemptSpawn(eng.Config().Units.Wall, game.Locations([2]int{0, 0}), 1))
	})

	t.Run("mobile bursts cap at the tempo balance", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 0, 20)

		sent := eng.AttemptSpawn(eng.Config().Units.Scout, game.Locations([2]int{11, 2}), 1000)

		require.Equal(t, 20, sent, "A 1000-unit burst spends everything available")
		require.Equal(t, 0.0, eng.Resource(game.Tempo))
	})

	t.Run("mobile units must spawn on an edge", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 0, 20)

		require.Equal(t, 0, eng.AttemptSpawn(eng.Config().Units.Scout, game.Locations([2]int{13, 5}), 1))
	})
}

func TestMatchEngineAttemptUpgrade(t *testing.T) {
	t.Run("upgrades own units once", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 10, 0)
		locs := game.Locations([2]int{5, 11})
		eng.AttemptSpawn(eng.Config().Units.Wall, locs, 1)

		require.Equal(t, 1, eng.AttemptUpgrade(locs))
		require.Equal(t, 8.0, eng.Resource(game.Structure), "Upgrade costs the build price again")
		require.Equal(t, 0, eng.AttemptUpgrade(locs), "Second upgrade should be a no-op")
	})

	t.Run("empty cells silently no-op", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 10, 0)

		require.Equal(t, 0, eng.AttemptUpgrade(game.Locations([2]int{9, 9})))
		require.Equal(t, 10.0, eng.Resource(game.Structure))
	})
}

func TestMatchEngineSubmitTurn(t *testing.T) {
	t.Run("hands the accumulated plan to the communicator", func(t *testing.T) {
		eng, comm := testMatchEngine(t, 1, 10, 20)
		eng.AttemptSpawn(eng.Config().Units.Wall, game.Locations([2]int{5, 11}), 1)
		eng.AttemptSpawn(eng.Config().Units.Scout, game.Locations([2]int{11, 2}), 3)

		require.NoError(t, eng.SubmitTurn())
		require.Len(t, comm.sent, 1)
		require.Len(t, comm.sent[0].Spawns, 2)
	})

	t.Run("second submit errors", func(t *testing.T) {
		eng, _ := testMatchEngine(t, 1, 0, 0)

		require.NoError(t, eng.SubmitTurn())
		require.Error(t, eng.SubmitTurn(), "Submission is exactly once per turn")
	})
}
