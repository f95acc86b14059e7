package game

import "github.com/arcadelab/infestation/internal/core"

// snapshot is one undo step: the full board plus the play state it had.
// Boards are small (tens of cells), so whole-grid snapshots are cheaper
// and safer than event inversion.
type snapshot struct {
	grid  *Grid
	state PlayState
}

// GameState is a level in progress: the live board, its play state, and
// the undo history. All mutation goes through Apply.
type GameState struct {
	levelID string
	rules   Rules

	grid    *Grid
	state   PlayState
	initial *Grid
	history []snapshot

	// Enemy-less boards (portal hubs, tutorials) never count as won.
	hadEnemies bool
}

// NewGameState starts a level from its loaded board.
func NewGameState(levelID string, g *Grid, rules Rules) *GameState {
	s := &GameState{
		levelID:    levelID,
		rules:      rules,
		grid:       g,
		initial:    g.Clone(),
		hadEnemies: g.CountEnemies() > 0,
	}
	s.state = s.outcome(g)
	return s
}

// LevelID returns the id of the level being played.
func (s *GameState) LevelID() string { return s.levelID }

// Grid returns the live board. Callers must not mutate it.
func (s *GameState) Grid() *Grid { return s.grid }

// State returns the current play state.
func (s *GameState) State() PlayState { return s.state }

// Moves returns the number of successful turns taken since the last
// restart, undo included.
func (s *GameState) Moves() int { return len(s.history) }

// CanUndo reports whether there is history to rewind.
func (s *GameState) CanUndo() bool { return len(s.history) > 0 }

// Apply processes one command. Undo and reset act on the history; any
// other command resolves a turn. Returns the turn's event log and whether
// the board changed. Illegal moves and inputs after a win change nothing;
// undo remains available after a loss.
func (s *GameState) Apply(cmd core.Command) (EventLog, bool) {
	switch cmd {
	case core.CmdUndo:
		return nil, s.Undo()
	case core.CmdReset:
		s.Restart()
		return nil, true
	case core.CmdNone:
		return nil, false
	}

	if s.state != StatePlaying {
		return nil, false
	}
	next, outcome, events := ResolveTurn(s.grid, cmd, s.rules)
	if next == s.grid {
		// Rejected in the player phase: nothing happened, no history.
		return nil, false
	}
	s.history = append(s.history, snapshot{grid: s.grid, state: s.state})
	s.grid = next
	s.state = s.downgrade(outcome)
	return events, true
}

// Undo rewinds one turn. Returns false when at the start of history.
func (s *GameState) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.grid = last.grid
	s.state = last.state
	return true
}

// Restart rewinds to the loaded board and clears all history.
func (s *GameState) Restart() {
	s.grid = s.initial.Clone()
	s.history = nil
	s.state = s.outcome(s.grid)
}

// PortalDestination returns the level id of the portal the player is
// standing on, if any.
func (s *GameState) PortalDestination() (string, bool) {
	pos, _, ok := s.grid.FindPlayer()
	if !ok {
		return "", false
	}
	return s.grid.PortalAt(pos)
}

// StandingOnPortal reports whether the player is on a portal cell.
func (s *GameState) StandingOnPortal() bool {
	_, ok := s.PortalDestination()
	return ok
}

// Note returns the note text under the player, if any.
func (s *GameState) Note() (string, bool) {
	pos, _, ok := s.grid.FindPlayer()
	if !ok {
		return "", false
	}
	return s.grid.NoteAt(pos)
}

func (s *GameState) outcome(g *Grid) PlayState {
	return s.downgrade(outcomeOf(g))
}

func (s *GameState) downgrade(st PlayState) PlayState {
	if st == StateWon && !s.hadEnemies {
		return StatePlaying
	}
	return st
}
