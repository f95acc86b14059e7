package pathfind

import (
	"testing"

	"github.com/arcadelab/infestation/internal/core"
)

// parse builds a passability function and named positions from an ASCII
// map: '#' blocks, 'A' is the start, 'B' the goal, anything else is open.
func parse(rows []string) (from, to core.Pos, w, h int, passable func(core.Pos) bool) {
	h = len(rows)
	w = len(rows[0])
	blocked := make(map[core.Pos]bool)
	for y, row := range rows {
		for x, ch := range row {
			p := core.P(x, y)
			switch ch {
			case '#':
				blocked[p] = true
			case 'A':
				from = p
			case 'B':
				to = p
			}
		}
	}
	return from, to, w, h, func(p core.Pos) bool { return !blocked[p] }
}

func TestNextStepStraightLine(t *testing.T) {
	from, to, w, h, passable := parse([]string{
		"A..B",
	})
	d, ok := NextStep(from, to, w, h, passable, Four)
	if !ok || d != (core.Delta{DX: 1}) {
		t.Errorf("got %v, %v; want (1,0)", d, ok)
	}
}

func TestNextStepAroundWall(t *testing.T) {
	from, to, w, h, passable := parse([]string{
		"A#B",
		"...",
	})
	d, ok := NextStep(from, to, w, h, passable, Four)
	if !ok || d != (core.Delta{DY: 1}) {
		t.Errorf("got %v, %v; want (0,1)", d, ok)
	}
}

func TestNextStepNoPath(t *testing.T) {
	from, to, w, h, passable := parse([]string{
		"A#B",
		".#.",
		".#.",
	})
	if d, ok := NextStep(from, to, w, h, passable, Four); ok || !d.IsZero() {
		t.Errorf("expected no path, got %v, %v", d, ok)
	}
}

func TestNextStepDiagonal(t *testing.T) {
	from, to, w, h, passable := parse([]string{
		"A..",
		"...",
		"..B",
	})
	d, ok := NextStep(from, to, w, h, passable, Eight)
	if !ok || d != (core.Delta{DX: 1, DY: 1}) {
		t.Errorf("got %v, %v; want SE", d, ok)
	}
}

func TestNextStepGoalPassableAsDestinationOnly(t *testing.T) {
	// The goal cell itself may be "occupied" (the player); it must still
	// be reachable as the final step.
	from, to, w, h, _ := parse([]string{
		"AB",
	})
	blockedGoal := func(p core.Pos) bool { return p != to }
	d, ok := NextStep(from, to, w, h, blockedGoal, Eight)
	_ = d
	if !ok {
		t.Fatal("goal must be passable as destination")
	}
}

func TestNextStepTieBreakPrefersHorizontal(t *testing.T) {
	// Two shortest paths of equal length: east first, or south first.
	// The fixed priority order must pick east.
	from, to, w, h, passable := parse([]string{
		"A.",
		".B",
	})
	d, ok := NextStep(from, to, w, h, passable, Four)
	if !ok || d != (core.Delta{DX: 1}) {
		t.Errorf("tie-break picked %v; want east", d)
	}
}

func TestNextStepPathLength(t *testing.T) {
	// Walking one BFS step at a time reaches the goal in exactly the
	// shortest-path length.
	rows := []string{
		"A.#..",
		".###.",
		"....B",
	}
	from, to, w, h, passable := parse(rows)
	pos := from
	steps := 0
	for pos != to {
		d, ok := NextStep(pos, to, w, h, passable, Four)
		if !ok {
			t.Fatalf("stuck at %v after %d steps", pos, steps)
		}
		pos = pos.Add(d)
		steps++
		if steps > 50 {
			t.Fatal("walk did not terminate")
		}
	}
	if steps != 6 {
		t.Errorf("reached goal in %d steps, want 6", steps)
	}
}

func TestCostOrdering(t *testing.T) {
	// 2 orthogonal < 2 diagonal (2 < 2√2), 3 orthogonal > 2 diagonal.
	twoOrtho := Cost{Ortho: 2}
	twoDiag := Cost{Diag: 2}
	threeOrtho := Cost{Ortho: 3}
	if !twoOrtho.Less(twoDiag) {
		t.Error("2 < 2√2 expected")
	}
	if !twoDiag.Less(threeOrtho) {
		t.Error("2√2 < 3 expected")
	}
	if twoOrtho.Less(twoOrtho) {
		t.Error("Less must be irreflexive")
	}
	// 5 orthogonal < 1 ortho + 3 diag (5 < 1+3√2 ≈ 5.24)
	if !(Cost{Ortho: 5}).Less(Cost{Ortho: 1, Diag: 3}) {
		t.Error("5 < 1+3√2 expected")
	}
}

func TestFieldPrefersFewerDiagonals(t *testing.T) {
	_, to, w, h, passable := parse([]string{
		"...",
		"...",
		"..B",
	})
	costs := Field(to, w, h, passable)
	if c, ok := costs[core.P(0, 0)]; !ok || c != (Cost{Diag: 2}) {
		t.Errorf("corner cost = %+v, %v; want 2 diagonals", c, ok)
	}
	if c, ok := costs[core.P(2, 0)]; !ok || c != (Cost{Ortho: 2}) {
		t.Errorf("edge cost = %+v, %v; want 2 orthogonals", c, ok)
	}
}

func TestFieldExcludesUnreachable(t *testing.T) {
	_, to, w, h, passable := parse([]string{
		".#B",
		".#.",
		".#.",
	})
	costs := Field(to, w, h, passable)
	if _, ok := costs[core.P(0, 0)]; ok {
		t.Error("walled-off cell must be absent from the field")
	}
	if costs[to] != Zero {
		t.Error("target cost must be zero")
	}
}

func TestFieldDeterminism(t *testing.T) {
	_, to, w, h, passable := parse([]string{
		".....",
		".#.#.",
		"..B..",
	})
	a := Field(to, w, h, passable)
	b := Field(to, w, h, passable)
	if len(a) != len(b) {
		t.Fatalf("field sizes differ: %d vs %d", len(a), len(b))
	}
	for p, c := range a {
		if b[p] != c {
			t.Errorf("cost at %v differs: %+v vs %+v", p, c, b[p])
		}
	}
}
