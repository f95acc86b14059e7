package game

import (
	"testing"

	"github.com/arcadelab/infestation/internal/core"
)

func mustState(t *testing.T, rows ...string) *GameState {
	t.Helper()
	return NewGameState("test", mustGrid(t, rows...), Rules{})
}

func TestApplyRejectedMoveLeavesNoTrace(t *testing.T) {
	s := mustState(t, ">#R")
	if _, changed := s.Apply(core.CmdRight); changed {
		t.Error("blocked move reported as changed")
	}
	if s.Moves() != 0 || s.CanUndo() {
		t.Error("blocked move left history")
	}
}

func TestWaitIsASuccessfulTurn(t *testing.T) {
	s := mustState(t, ">..")
	if _, changed := s.Apply(core.CmdWait); !changed {
		t.Error("wait must count as a turn")
	}
	if s.Moves() != 1 {
		t.Errorf("moves = %d, want 1", s.Moves())
	}
}

func TestUndoRestoresPriorBoards(t *testing.T) {
	s := mustState(t, ">...R")
	initial := s.Grid().Clone()

	s.Apply(core.CmdRight)
	afterFirst := s.Grid().Clone()
	s.Apply(core.CmdRight)
	if s.Moves() != 2 {
		t.Fatalf("moves = %d, want 2", s.Moves())
	}

	if !s.Undo() || !s.Grid().Equal(afterFirst) {
		t.Error("first undo did not restore the previous board")
	}
	if !s.Undo() || !s.Grid().Equal(initial) {
		t.Error("second undo did not restore the initial board")
	}
	if s.CanUndo() || s.Undo() {
		t.Error("undo past the start of history")
	}
}

func TestUndoEscapesLoss(t *testing.T) {
	s := mustState(t, ">O")
	s.Apply(core.CmdRight)
	if s.State() != StateLost {
		t.Fatalf("state = %v, want lost", s.State())
	}
	if _, changed := s.Apply(core.CmdUndo); !changed {
		t.Fatal("undo after loss must work")
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing after undo", s.State())
	}
	if _, _, ok := s.Grid().FindPlayer(); !ok {
		t.Error("player not restored")
	}
}

func TestEnemylessBoardNeverWins(t *testing.T) {
	s := mustState(t, ">..")
	if s.State() != StatePlaying {
		t.Fatalf("state = %v at start", s.State())
	}
	s.Apply(core.CmdRight)
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing on an enemy-less board", s.State())
	}
}

func TestKillingLastEnemyWins(t *testing.T) {
	s := mustState(t, ">R")
	s.Apply(core.CmdRight)
	if s.State() != StateWon {
		t.Errorf("state = %v, want won", s.State())
	}
	if _, changed := s.Apply(core.CmdRight); changed {
		t.Error("input after a win must be ignored")
	}
}

func TestRestartClearsEverything(t *testing.T) {
	s := mustState(t, ">...R")
	initial := s.Grid().Clone()
	s.Apply(core.CmdRight)
	s.Apply(core.CmdRight)

	s.Apply(core.CmdReset)
	if !s.Grid().Equal(initial) {
		t.Error("restart did not restore the initial board")
	}
	if s.Moves() != 0 || s.CanUndo() {
		t.Error("restart left history behind")
	}
}

func TestPortalUnderPlayer(t *testing.T) {
	g, err := gridFromRows([]string{">."}, map[core.Pos]string{core.P(1, 0): "cave"})
	if err != nil {
		t.Fatal(err)
	}
	s := NewGameState("hub", g, Rules{})
	if _, ok := s.PortalDestination(); ok {
		t.Error("no portal under the player yet")
	}
	s.Apply(core.CmdRight)
	dest, ok := s.PortalDestination()
	if !ok || dest != "cave" {
		t.Errorf("portal = %q, %v; want cave", dest, ok)
	}
}
