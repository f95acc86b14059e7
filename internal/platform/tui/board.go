package tui

import (
	"github.com/arcadelab/infestation/internal/core"
	"github.com/arcadelab/infestation/internal/game"
)

// cellGlyph returns the rune and color a cell is drawn with. Portal
// cells are handled by the caller since portals live beside the board.
func cellGlyph(c game.Cell) (rune, core.Color) {
	switch c.Kind {
	case game.CellEmpty:
		return '·', core.ColorGray
	case game.CellWall:
		return '█', core.ColorGray
	case game.CellPlayer:
		return c.Rune(), core.ColorBrightGreen
	case game.CellEnemy:
		if c.Enemy == game.EnemyCyborg {
			return 'C', core.ColorBrightMagenta
		}
		return 'R', core.ColorRed
	case game.CellPlank:
		return '=', core.ColorYellow
	case game.CellWeb:
		return 'w', core.ColorCyan
	case game.CellVoid:
		return 'O', core.ColorBlue
	case game.CellExplosive:
		return 'X', core.ColorBrightRed
	case game.CellTrigger:
		return c.Rune(), core.ColorBrightYellow
	default:
		return '?', core.ColorDefault
	}
}

// DrawBoard renders the grid (and any running animation stage) onto the
// screen at the given offset.
func DrawBoard(s *core.Screen, g *game.Grid, anim *game.Animator, offX, offY int) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := core.P(x, y)
			c := g.At(p)
			r, col := cellGlyph(c)
			if c.Kind == game.CellEmpty {
				if _, ok := g.PortalAt(p); ok {
					r, col = 'o', core.ColorBrightYellow
				} else if _, ok := g.NoteAt(p); ok {
					r, col = '?', core.ColorWhite
				}
			}
			s.SetColored(offX+x, offY+y, r, col)
		}
	}

	if anim == nil {
		return
	}
	stage, progress, ok := anim.Current()
	if !ok {
		return
	}
	drawStage(s, g, stage, progress, offX, offY)
}

// drawStage overlays the active animation stage. The grid already holds
// the turn's final state, so movement is faked by drawing movers back at
// their origin for the first half of the stage, and wave stages flash
// the affected cells.
func drawStage(s *core.Screen, g *game.Grid, stage game.Stage, progress float64, offX, offY int) {
	switch stage.Kind {
	case game.StageMove:
		for _, e := range stage.Events {
			switch e.Kind {
			case game.EventMove:
				if e.From == e.To || progress >= 0.5 {
					continue
				}
				r, col := cellGlyph(e.Cell)
				empty, _ := cellGlyph(game.Empty())
				s.SetColored(offX+e.To.X, offY+e.To.Y, empty, core.ColorGray)
				s.SetColored(offX+e.From.X, offY+e.From.Y, r, col)
			case game.EventDestroy:
				// Casualties stay visible for the first half of the stage.
				if progress < 0.5 {
					r, _ := cellGlyph(e.Cell)
					s.SetColored(offX+e.From.X, offY+e.From.Y, r, core.ColorRed)
				}
			}
		}
	case game.StageZap:
		for _, e := range stage.Events {
			s.SetColored(offX+e.From.X, offY+e.From.Y, '*', core.ColorBrightYellow)
		}
	case game.StageExplode:
		for _, e := range stage.Events {
			s.SetColored(offX+e.From.X, offY+e.From.Y, '*', core.ColorBrightRed)
		}
	}
}
