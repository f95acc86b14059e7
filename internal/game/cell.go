// Package game implements the turn-resolution core: the cell/grid model,
// the phase-ordered turn resolver, undo history, and the animation
// projection of resolved turns. It is pure simulation — no I/O, no
// rendering, no timing beyond the dt fed to the animator.
package game

import "github.com/arcadelab/infestation/internal/core"

// CellKind enumerates the closed set of cell variants. Switches over
// CellKind list every constant; when a variant is added, every consumer
// must be revisited.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellWall
	CellPlayer
	CellEnemy
	CellPlank
	CellWeb
	CellVoid
	CellExplosive
	CellTrigger
)

// EnemyKind distinguishes enemy movement variants.
type EnemyKind int

const (
	// EnemyRat chases the player along a BFS shortest path, 8-connected.
	EnemyRat EnemyKind = iota
	// EnemyCyborg follows a weighted distance field (diagonals cost √2),
	// avoids hazards, and eats rats in its way.
	EnemyCyborg
)

// Cell is one grid square's occupant. The Kind selects which of the
// variant fields are meaningful: Facing for Player/Enemy, Enemy for
// CellEnemy, Trigger for CellTrigger. Cells are compared with == so the
// unused fields are always zero.
type Cell struct {
	Kind    CellKind
	Facing  core.Dir8
	Enemy   EnemyKind
	Trigger uint8
}

// Cell constructors, one per variant.

func Empty() Cell                     { return Cell{Kind: CellEmpty} }
func Wall() Cell                      { return Cell{Kind: CellWall} }
func Plank() Cell                     { return Cell{Kind: CellPlank} }
func Web() Cell                       { return Cell{Kind: CellWeb} }
func Void() Cell                      { return Cell{Kind: CellVoid} }
func Explosive() Cell                 { return Cell{Kind: CellExplosive} }
func Trigger(n uint8) Cell            { return Cell{Kind: CellTrigger, Trigger: n} }
func Player(facing core.Dir4) Cell    { return Cell{Kind: CellPlayer, Facing: facing.Dir8()} }
func Rat(facing core.Dir8) Cell       { return Cell{Kind: CellEnemy, Enemy: EnemyRat, Facing: facing} }
func Cyborg(facing core.Dir8) Cell    { return Cell{Kind: CellEnemy, Enemy: EnemyCyborg, Facing: facing} }
func EnemyCell(k EnemyKind, facing core.Dir8) Cell {
	return Cell{Kind: CellEnemy, Enemy: k, Facing: facing}
}

// IsPlayer reports whether the cell holds the player.
func (c Cell) IsPlayer() bool { return c.Kind == CellPlayer }

// IsEnemy reports whether the cell holds any enemy.
func (c Cell) IsEnemy() bool { return c.Kind == CellEnemy }

// IsEnemyKind reports whether the cell holds an enemy of the given kind.
func (c Cell) IsEnemyKind(k EnemyKind) bool {
	return c.Kind == CellEnemy && c.Enemy == k
}

// BlocksEnemy reports whether an enemy of the given kind cannot enter the
// cell. Rats are blocked by walls, any enemy, and webs; cyborgs only by
// walls, other cyborgs, and webs (they eat rats).
func (c Cell) BlocksEnemy(k EnemyKind) bool {
	switch c.Kind {
	case CellWall, CellWeb:
		return true
	case CellEnemy:
		if k == EnemyCyborg {
			return c.Enemy == EnemyCyborg
		}
		return true
	case CellEmpty, CellPlayer, CellPlank, CellVoid, CellExplosive, CellTrigger:
		return false
	default:
		return false
	}
}

// CellFromRune parses a level-file code. Enemies come out facing east;
// the level loader orients them toward the player afterwards.
func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case '.':
		return Empty(), true
	case '#':
		return Wall(), true
	case '^':
		return Player(core.North), true
	case 'v':
		return Player(core.South), true
	case '<':
		return Player(core.West), true
	case '>':
		return Player(core.East), true
	case 'R':
		return Rat(core.DirE), true
	case 'C':
		return Cyborg(core.DirE), true
	case '=':
		return Plank(), true
	case 'w':
		return Web(), true
	case 'O':
		return Void(), true
	case 'X':
		return Explosive(), true
	}
	if r >= '1' && r <= '9' {
		return Trigger(uint8(r - '0')), true
	}
	return Cell{}, false
}

// Rune returns the level-file code for the cell. The inverse of the level
// parser's code table.
func (c Cell) Rune() rune {
	switch c.Kind {
	case CellEmpty:
		return '.'
	case CellWall:
		return '#'
	case CellPlayer:
		switch c.Facing {
		case core.DirN:
			return '^'
		case core.DirS:
			return 'v'
		case core.DirW:
			return '<'
		default:
			return '>'
		}
	case CellEnemy:
		if c.Enemy == EnemyCyborg {
			return 'C'
		}
		return 'R'
	case CellPlank:
		return '='
	case CellWeb:
		return 'w'
	case CellVoid:
		return 'O'
	case CellExplosive:
		return 'X'
	case CellTrigger:
		return rune('0' + c.Trigger)
	default:
		return '?'
	}
}
