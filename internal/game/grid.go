package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arcadelab/infestation/internal/core"
)

// Grid is the game board: a fixed w×h array of cells in row-major order,
// plus portal and note annotations keyed by position. The size never
// changes after load.
type Grid struct {
	w, h    int
	cells   []Cell
	portals map[core.Pos]string
	notes   map[core.Pos]string
}

// NewGrid builds a grid from rows of cells. Rows must be rectangular and
// the board must contain exactly one player cell.
func NewGrid(rows [][]Cell, portals, notes map[core.Pos]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid: empty board")
	}
	w := len(rows[0])
	g := &Grid{
		w:       w,
		h:       len(rows),
		cells:   make([]Cell, 0, w*len(rows)),
		portals: portals,
		notes:   notes,
	}
	if g.portals == nil {
		g.portals = make(map[core.Pos]string)
	}
	if g.notes == nil {
		g.notes = make(map[core.Pos]string)
	}

	players := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", y, len(row), w)
		}
		for _, c := range row {
			if c.IsPlayer() {
				players++
			}
			g.cells = append(g.cells, c)
		}
	}
	if players == 0 {
		return nil, fmt.Errorf("grid: no player cell")
	}
	if players > 1 {
		return nil, fmt.Errorf("grid: %d player cells, want exactly one", players)
	}
	return g, nil
}

// Width returns the board width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the board height in cells.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether the position lies on the board.
func (g *Grid) InBounds(p core.Pos) bool {
	return p.InBounds(g.w, g.h)
}

// At returns the cell at p. Positions outside the board read as Wall —
// the border behaves as a solid wall for every movement rule.
func (g *Grid) At(p core.Pos) Cell {
	if !g.InBounds(p) {
		return Wall()
	}
	return g.cells[p.Y*g.w+p.X]
}

// Set writes the cell at p. Writing outside the board is a resolver bug
// and panics rather than clamping.
func (g *Grid) Set(p core.Pos, c Cell) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: set out of bounds at (%d,%d) on %dx%d board", p.X, p.Y, g.w, g.h))
	}
	g.cells[p.Y*g.w+p.X] = c
}

// Find returns the positions of all cells matching pred, in scan order
// (row-major). Scan order is the deterministic base ordering for the
// resolver.
func (g *Grid) Find(pred func(Cell) bool) []core.Pos {
	var out []core.Pos
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := core.P(x, y)
			if pred(g.cells[y*g.w+x]) {
				out = append(out, p)
			}
		}
	}
	return out
}

// FindPlayer locates the player cell. Returns false if the player has
// been destroyed.
func (g *Grid) FindPlayer() (core.Pos, Cell, bool) {
	for i, c := range g.cells {
		if c.IsPlayer() {
			return core.P(i%g.w, i/g.w), c, true
		}
	}
	return core.Pos{}, Cell{}, false
}

// CountEnemies returns the number of enemy cells on the board.
func (g *Grid) CountEnemies() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEnemy() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	portals := make(map[core.Pos]string, len(g.portals))
	for p, l := range g.portals {
		portals[p] = l
	}
	notes := make(map[core.Pos]string, len(g.notes))
	for p, t := range g.notes {
		notes[p] = t
	}
	return &Grid{w: g.w, h: g.h, cells: cells, portals: portals, notes: notes}
}

// Equal reports whether two grids have identical dimensions, cells, and
// annotations.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	if len(g.portals) != len(other.portals) || len(g.notes) != len(other.notes) {
		return false
	}
	for p, l := range g.portals {
		if other.portals[p] != l {
			return false
		}
	}
	for p, t := range g.notes {
		if other.notes[p] != t {
			return false
		}
	}
	return true
}

// PortalAt resolves a position to its linked destination level id.
func (g *Grid) PortalAt(p core.Pos) (string, bool) {
	dest, ok := g.portals[p]
	return dest, ok
}

// NoteAt returns the note text at a position, if any.
func (g *Grid) NoteAt(p core.Pos) (string, bool) {
	text, ok := g.notes[p]
	return text, ok
}

// Portal is a position annotated with a destination level id.
type Portal struct {
	Pos   core.Pos
	Level string
}

// Portals returns all portals sorted in scan order.
func (g *Grid) Portals() []Portal {
	out := make([]Portal, 0, len(g.portals))
	for p, l := range g.portals {
		out = append(out, Portal{Pos: p, Level: l})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Less(out[j].Pos) })
	return out
}

// Note is a position annotated with display text.
type Note struct {
	Pos  core.Pos
	Text string
}

// Notes returns all notes sorted in scan order.
func (g *Grid) Notes() []Note {
	out := make([]Note, 0, len(g.notes))
	for p, t := range g.notes {
		out = append(out, Note{Pos: p, Text: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Less(out[j].Pos) })
	return out
}

// ToCSV renders the board as comma-separated cell codes, one row per
// line. Used by tests and the level round-trip.
func (g *Grid) ToCSV() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if x > 0 {
				sb.WriteByte(',')
			}
			sb.WriteRune(g.cells[y*g.w+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
