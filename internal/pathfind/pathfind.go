// Package pathfind implements deterministic shortest-path queries on a
// bounded grid: a BFS next-step for uniform-cost movement and a Dijkstra
// distance field with an exact orthogonal+diagonal·√2 metric.
//
// Determinism matters more than speed here: tie-breaks always follow the
// fixed direction priority order from core (horizontal first), so two runs
// over the same grid produce the same answer.
package pathfind

import (
	"container/heap"

	"github.com/arcadelab/infestation/internal/core"
)

// Connectivity selects the neighborhood used for movement.
type Connectivity int

const (
	Four Connectivity = iota
	Eight
)

func neighbors(conn Connectivity) []core.Dir8 {
	d8 := core.Dirs8()
	if conn == Four {
		return d8[:4]
	}
	return d8[:]
}

// NextStep returns the first step of a shortest path from `from` to `to`
// over a w×h grid, moving through cells for which passable returns true.
// The destination is always treated as reachable (passable as goal only).
// Returns the zero delta and false when no path exists or from == to.
//
// Ties between equally short first steps are broken by the fixed direction
// priority order, so the result is fully deterministic.
func NextStep(from, to core.Pos, w, h int, passable func(core.Pos) bool, conn Connectivity) (core.Delta, bool) {
	if from == to {
		return core.Delta{}, false
	}

	// BFS backwards from the goal so dist[n] is the remaining distance;
	// the best first step is then the neighbor of `from` with the smallest
	// remaining distance, scanned in priority order.
	dist := map[core.Pos]int{to: 0}
	queue := []core.Pos{to}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dir := range neighbors(conn) {
			n := cur.Add(dir.Delta())
			if !n.InBounds(w, h) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			if n != from && !passable(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}

	if _, ok := dist[from]; !ok {
		return core.Delta{}, false
	}

	best := -1
	var bestDelta core.Delta
	for _, dir := range neighbors(conn) {
		n := from.Add(dir.Delta())
		d, ok := dist[n]
		if !ok {
			continue
		}
		if n != to && !passable(n) {
			continue
		}
		if best == -1 || d < best {
			best = d
			bestDelta = dir.Delta()
		}
	}
	if best == -1 {
		return core.Delta{}, false
	}
	return bestDelta, true
}

// Cost is a path cost of Ortho + Diag·√2, stored exactly as step counts so
// comparisons never touch floating point.
type Cost struct {
	Ortho, Diag int
}

// Zero is the cost of the empty path.
var Zero = Cost{}

// Step returns the cost extended by one step in the given direction.
func (c Cost) Step(dir core.Dir8) Cost {
	if dir.IsDiagonal() {
		return Cost{Ortho: c.Ortho, Diag: c.Diag + 1}
	}
	return Cost{Ortho: c.Ortho + 1, Diag: c.Diag}
}

// Less reports whether c < other as real numbers. The difference
// a + b·√2 is compared against zero via a²·sign(a) + 2b²·sign(b), which is
// exact for integer step counts.
func (c Cost) Less(other Cost) bool {
	a := c.Ortho - other.Ortho
	b := c.Diag - other.Diag
	v := a*a*sign(a) + 2*b*b*sign(b)
	return v < 0
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

type fieldEntry struct {
	cost Cost
	pos  core.Pos
}

// fieldQueue is a min-heap over (cost, scan position) — the position
// tie-break keeps pop order deterministic for equal costs.
type fieldQueue []fieldEntry

func (q fieldQueue) Len() int { return len(q) }
func (q fieldQueue) Less(i, j int) bool {
	if q[i].cost.Less(q[j].cost) {
		return true
	}
	if q[j].cost.Less(q[i].cost) {
		return false
	}
	return q[i].pos.Less(q[j].pos)
}
func (q fieldQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *fieldQueue) Push(x any)   { *q = append(*q, x.(fieldEntry)) }
func (q *fieldQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Field computes shortest-path costs from every reachable cell to target
// over the 8-connected grid, moving through cells for which passable
// returns true. The target itself is always included. Unreachable cells
// are absent from the result.
func Field(target core.Pos, w, h int, passable func(core.Pos) bool) map[core.Pos]Cost {
	costs := make(map[core.Pos]Cost)
	q := &fieldQueue{{cost: Zero, pos: target}}

	for q.Len() > 0 {
		e := heap.Pop(q).(fieldEntry)
		if _, done := costs[e.pos]; done {
			continue
		}
		costs[e.pos] = e.cost

		for _, dir := range core.Dirs8() {
			n := e.pos.Add(dir.Delta())
			if !n.InBounds(w, h) {
				continue
			}
			if _, done := costs[n]; done {
				continue
			}
			if !passable(n) {
				continue
			}
			heap.Push(q, fieldEntry{cost: e.cost.Step(dir), pos: n})
		}
	}

	return costs
}
