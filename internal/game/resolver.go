package game

import (
	"slices"

	"github.com/arcadelab/infestation/internal/core"
)

// PlayState is the terminal status of a board.
type PlayState int

const (
	StatePlaying PlayState = iota
	StateWon
	StateLost
)

func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Rules are the configurable resolution rules.
type Rules struct {
	// PlayerSurvivesBlast spares the player when caught in an explosion's
	// blast radius. Standing on the detonating cell itself is always
	// fatal.
	PlayerSurvivesBlast bool
}

// resolver carries the mutable state of one ResolveTurn call. Queued
// trigger numbers and explosion centers accumulate during the player and
// enemy phases and drain in alternating hazard waves.
type resolver struct {
	grid              *Grid
	rules             Rules
	events            EventLog
	pendingTriggers   []uint8
	pendingExplosions []core.Pos
	wave              int
}

// ResolveTurn computes the next board for a single player input. The
// input grid is never mutated; calling with the same grid and command
// always yields identical results.
//
// Phases run in order, each completing before the next: player action,
// enemy movement, hazard/trigger waves, win/lose check. An illegal move
// (walking into a wall, or a blocked plank push) aborts before any phase
// runs: the original grid is returned with an empty event log.
func ResolveTurn(g *Grid, cmd core.Command, rules Rules) (*Grid, PlayState, EventLog) {
	dir, isDir := cmd.Dir()
	if !isDir && cmd != core.CmdWait {
		return g, outcomeOf(g), nil
	}
	// A board with no player is over; boards with no enemies still take
	// turns (the session layer decides whether "no enemies" means won).
	playerPos, _, ok := g.FindPlayer()
	if !ok {
		return g, StateLost, nil
	}

	r := &resolver{grid: g.Clone(), rules: rules}

	if isDir && !r.playerMove(playerPos, dir) {
		return g, outcomeOf(g), nil
	}

	r.enemyPhase()
	r.hazardPhase()

	return r.grid, outcomeOf(r.grid), r.events
}

// playerMove applies a directional player action. Returns false when the
// move is illegal, in which case the resolver grid must be discarded
// untouched.
func (r *resolver) playerMove(pos core.Pos, dir core.Dir4) bool {
	delta := dir.Delta()
	target := pos.Add(delta)

	switch dest := r.grid.At(target); dest.Kind {
	case CellWall:
		// Border reads as Wall, so this also covers out-of-bounds.
		return false
	case CellPlank:
		beyond := target.Add(delta)
		if r.grid.At(beyond).Kind != CellEmpty {
			return false
		}
		r.grid.Set(beyond, Plank())
		r.grid.Set(target, Empty())
		r.events.move(Plank(), target, beyond)
	case CellEmpty, CellPlayer, CellEnemy, CellWeb, CellVoid, CellExplosive, CellTrigger:
	}

	r.enter(Player(dir), pos, target)
	return true
}

// enter moves entity c from→to, applying the destination cell's effect:
// webs and planks are crushed, enemies (or the player) on the target are
// killed, triggers and explosives queue hazard waves, voids consume the
// mover. The destination has already been checked for legality.
func (r *resolver) enter(c Cell, from, to core.Pos) {
	dest := r.grid.At(to)
	r.grid.Set(from, Empty())
	r.events.move(c, from, to)

	switch dest.Kind {
	case CellVoid:
		// The void swallows the mover and remains in place.
		r.events.destroy(c, to)
		return
	case CellWeb, CellPlank, CellEnemy, CellPlayer:
		r.events.destroy(dest, to)
	case CellTrigger:
		r.events.trigger(dest.Trigger, to)
		r.queueTrigger(dest.Trigger)
	case CellExplosive:
		r.queueExplosion(to)
	case CellEmpty, CellWall:
	}

	r.grid.Set(to, c)
}

func (r *resolver) queueTrigger(n uint8) {
	if !slices.Contains(r.pendingTriggers, n) {
		r.pendingTriggers = append(r.pendingTriggers, n)
	}
}

func (r *resolver) queueExplosion(p core.Pos) {
	if !slices.Contains(r.pendingExplosions, p) {
		r.pendingExplosions = append(r.pendingExplosions, p)
	}
}

// outcomeOf derives the play state from the board alone: no player means
// Lost, no enemies means Won. Callers hosting enemy-less levels downgrade
// Won to Playing themselves.
func outcomeOf(g *Grid) PlayState {
	if _, _, ok := g.FindPlayer(); !ok {
		return StateLost
	}
	if g.CountEnemies() == 0 {
		return StateWon
	}
	return StatePlaying
}
