package tui

import (
	"testing"

	"github.com/arcadelab/infestation/internal/core"
	"github.com/arcadelab/infestation/internal/game"
)

func TestDrawBoardGlyphs(t *testing.T) {
	rows := [][]game.Cell{
		{game.Player(core.East), game.Wall(), game.Rat(core.DirW)},
		{game.Empty(), game.Plank(), game.Cyborg(core.DirW)},
	}
	portals := map[core.Pos]string{core.P(0, 1): "hub"}
	g, err := game.NewGrid(rows, portals, nil)
	if err != nil {
		t.Fatal(err)
	}

	s := core.NewScreen(20, 10)
	DrawBoard(s, g, nil, 0, 0)

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '>'},
		{1, 0, '█'},
		{2, 0, 'R'},
		{0, 1, 'o'}, // empty cell with a portal
		{1, 1, '='},
		{2, 1, 'C'},
	}
	for _, c := range checks {
		if got := s.GetCell(c.x, c.y).Rune; got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if s.GetCell(0, 0).Color != core.ColorBrightGreen {
		t.Error("player should be bright green")
	}
}

func TestDrawBoardExplosionOverlay(t *testing.T) {
	rows := [][]game.Cell{
		{game.Player(core.East), game.Empty()},
	}
	g, err := game.NewGrid(rows, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	var log game.EventLog
	log = append(log, game.Event{Kind: game.EventExplode, From: core.P(1, 0), To: core.P(1, 0), Wave: 1})
	anim := game.NewAnimator(game.DefaultTiming())
	anim.Start(log)

	s := core.NewScreen(10, 5)
	DrawBoard(s, g, anim, 0, 0)
	if got := s.GetCell(1, 0).Rune; got != '*' {
		t.Errorf("exploding cell = %q, want flash", got)
	}
}
