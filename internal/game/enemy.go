package game

import (
	"sort"

	"github.com/arcadelab/infestation/internal/core"
	"github.com/arcadelab/infestation/internal/pathfind"
)

// enemyPhase moves every enemy one step toward the player. Cyborgs act
// before rats; within each group, enemies closer to the player act first
// so that back enemies can advance into freshly vacated cells. Moves
// apply to the live grid one enemy at a time, so each enemy sees the new
// positions of those that acted before it.
func (r *resolver) enemyPhase() {
	player, _, ok := r.grid.FindPlayer()
	if !ok {
		return
	}
	r.moveCyborgs(player)
	r.moveRats(player)
}

// moveCyborgs advances cyborgs down a weighted distance field computed
// once at phase start. Diagonal steps cost √2, so a cyborg two cells away
// orthogonally closes in before one two cells away diagonally. Cyborgs
// refuse hazardous cells entirely.
func (r *resolver) moveCyborgs(player core.Pos) {
	snapshot := r.grid.Clone()
	passable := func(p core.Pos) bool {
		switch snapshot.At(p).Kind {
		case CellWall, CellVoid, CellWeb, CellExplosive:
			return false
		default:
			return true
		}
	}
	field := pathfind.Field(player, r.grid.Width(), r.grid.Height(), passable)

	var movable []core.Pos
	for _, pos := range r.grid.Find(func(c Cell) bool { return c.IsEnemyKind(EnemyCyborg) }) {
		if _, ok := field[pos]; ok {
			movable = append(movable, pos)
		} else {
			// Walled off: just track the player with its gaze.
			r.turnToward(pos, player)
		}
	}
	sort.SliceStable(movable, func(i, j int) bool {
		ci, cj := field[movable[i]], field[movable[j]]
		if ci.Less(cj) {
			return true
		}
		if cj.Less(ci) {
			return false
		}
		return movable[i].Less(movable[j])
	})

	for _, pos := range movable {
		cur := field[pos]
		var (
			found    bool
			bestCost pathfind.Cost
			bestDir  core.Dir8
		)
		for _, dir := range core.Dirs8() {
			n := pos.Add(dir.Delta())
			cost, ok := field[n]
			if !ok || !cost.Less(cur) {
				continue
			}
			if r.grid.At(n).BlocksEnemy(EnemyCyborg) {
				continue
			}
			if !found || cost.Less(bestCost) {
				found, bestCost, bestDir = true, cost, dir
			}
		}
		if found {
			r.enter(Cyborg(bestDir), pos, pos.Add(bestDir.Delta()))
		} else {
			r.turnToward(pos, player)
		}
	}
}

// moveRats advances rats one BFS step each, 8-connected, recomputed per
// rat against the live grid. A rat with no path (or whose step became
// blocked) turns to face the player instead.
func (r *resolver) moveRats(player core.Pos) {
	positions := r.grid.Find(func(c Cell) bool { return c.IsEnemyKind(EnemyRat) })
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].DistSq(player) < positions[j].DistSq(player)
	})

	passable := func(p core.Pos) bool { return !r.grid.At(p).BlocksEnemy(EnemyRat) }
	for _, pos := range positions {
		delta, ok := pathfind.NextStep(pos, player, r.grid.Width(), r.grid.Height(), passable, pathfind.Eight)
		if !ok {
			r.turnToward(pos, player)
			continue
		}
		target := pos.Add(delta)
		// NextStep always allows the goal cell as a destination; if the
		// player is already dead the cell may hold the rat that got there
		// first.
		if r.grid.At(target).BlocksEnemy(EnemyRat) {
			r.turnToward(pos, player)
			continue
		}
		dir, _ := core.Dir8FromDelta(delta)
		r.enter(Rat(dir), pos, target)
	}
}

// turnToward rotates a stuck enemy to face the player. Emits an in-place
// move event only when the facing actually changes.
func (r *resolver) turnToward(pos, player core.Pos) {
	c := r.grid.At(pos)
	dir, ok := core.Dir8FromDelta(player.Sub(pos))
	if !ok || c.Facing == dir {
		return
	}
	c.Facing = dir
	r.grid.Set(pos, c)
	r.events.move(c, pos, pos)
}
