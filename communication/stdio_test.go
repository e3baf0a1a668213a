package communication

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"rampart/game"

	"github.com/stretchr/testify/require"
)

func testUnits() game.UnitSet {
	return game.UnitSet{
		Wall: "FF", Support: "EF", Turret: "DF",
		Scout: "PI", Demolisher: "EI", Interceptor: "SI",
	}
}

func TestStdioReadFrame(t *testing.T) {
	t.Run("reads one frame per line, skipping blanks", func(t *testing.T) {
		in := strings.NewReader("{\"a\":1}\n\n{\"b\":2}\n")
		s := NewStdio(in, &bytes.Buffer{})

		frame, err := s.ReadFrame()
		require.NoError(t, err)
		require.JSONEq(t, `{"a":1}`, string(frame))

		frame, err = s.ReadFrame()
		require.NoError(t, err)
		require.JSONEq(t, `{"b":2}`, string(frame))

		_, err = s.ReadFrame()
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestStdioSendTurn(t *testing.T) {
	t.Run("splits the plan into build and deploy lines", func(t *testing.T) {
		var out bytes.Buffer
		s := NewStdio(strings.NewReader(""), &out)

		plan := &game.Plan{}
		plan.AddSpawn("FF", game.Loc(5, 11), 1)
		plan.AddSpawn("PI", game.Loc(11, 2), 3)
		plan.AddUpgrade(game.Loc(5, 11))

		require.NoError(t, s.SendTurn(testUnits(), plan))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		require.JSONEq(t, `[["FF",5,11],["UP",5,11]]`, lines[0],
			"Stationary spawns and upgrades share the build line")
		require.JSONEq(t, `[["PI",11,2],["PI",11,2],["PI",11,2]]`, lines[1],
			"Deploy commands repeat per requested unit")
	})

	t.Run("an empty plan still emits both lines", func(t *testing.T) {
		var out bytes.Buffer
		s := NewStdio(strings.NewReader(""), &out)

		require.NoError(t, s.SendTurn(testUnits(), &game.Plan{}))
		require.Equal(t, "[]\n[]\n", out.String())
	})
}
