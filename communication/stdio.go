package communication

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"rampart/game"
)

// Stdio speaks the match server's newline-delimited JSON protocol:
// frames arrive one per line on stdin, and a submitted turn goes out as two
// lines, the build commands then the deploy commands.
type Stdio struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewStdio(in io.Reader, out io.Writer) *Stdio {
	scanner := bufio.NewScanner(in)
	// Turn frames carry the full board and can easily exceed the default
	// scanner buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Stdio{scanner: scanner, out: out}
}

func (s *Stdio) ReadFrame() ([]byte, error) {
	for s.scanner.Scan() {
		line := s.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		frame := make([]byte, len(line))
		copy(frame, line)
		return frame, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return nil, io.EOF
}

// A command on the wire is [shorthand, x, y]; upgrades use the pseudo
// shorthand "UP". Deploy commands repeat per requested unit.
func (s *Stdio) SendTurn(units game.UnitSet, plan *game.Plan) error {
	build := [][]any{}
	deploy := [][]any{}
	for _, sp := range plan.Spawns {
		cmd := []any{string(sp.Kind), sp.Loc.X, sp.Loc.Y}
		if stationary(units, sp.Kind) {
			build = append(build, cmd)
			continue
		}
		for i := 0; i < sp.Count; i++ {
			deploy = append(deploy, cmd)
		}
	}
	for _, loc := range plan.Upgrades {
		build = append(build, []any{"UP", loc.X, loc.Y})
	}

	for _, stack := range [][][]any{build, deploy} {
		line, err := json.Marshal(stack)
		if err != nil {
			return fmt.Errorf("send turn: %w", err)
		}
		if _, err := fmt.Fprintf(s.out, "%s\n", line); err != nil {
			return fmt.Errorf("send turn: %w", err)
		}
	}
	return nil
}

func stationary(units game.UnitSet, kind game.UnitKind) bool {
	return kind == units.Wall || kind == units.Support || kind == units.Turret
}
