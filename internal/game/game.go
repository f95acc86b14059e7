package game

import (
	"time"

	"github.com/arcadelab/infestation/internal/core"
)

// Game binds a level in progress to its animation playback. Input that
// arrives while a turn is still animating is buffered (latest wins) and
// applied when the animation completes, so the simulation never sees
// more than one command per finished turn.
type Game struct {
	state  *GameState
	anim   *Animator
	queued core.Command
}

// NewGame starts a level.
func NewGame(levelID string, g *Grid, rules Rules, timing Timing) *Game {
	return &Game{
		state: NewGameState(levelID, g, rules),
		anim:  NewAnimator(timing),
	}
}

// State exposes the underlying level state for rendering and queries.
func (g *Game) State() *GameState { return g.state }

// IsAnimating reports whether a turn's playback is still running.
func (g *Game) IsAnimating() bool { return !g.anim.Done() }

// Animator exposes the playback state for the renderer.
func (g *Game) Animator() *Animator { return g.anim }

// HandleCommand feeds one input. During animation the command is
// buffered; undo and reset skip the running playback instead and apply
// immediately.
func (g *Game) HandleCommand(cmd core.Command) {
	if cmd == core.CmdNone {
		return
	}
	if g.IsAnimating() {
		if cmd == core.CmdUndo || cmd == core.CmdReset {
			g.anim.Skip()
			g.queued = core.CmdNone
			g.state.Apply(cmd)
			return
		}
		g.queued = cmd
		return
	}
	g.apply(cmd)
}

// Tick advances playback and flushes a buffered command once it ends.
func (g *Game) Tick(dt time.Duration) {
	if g.IsAnimating() {
		g.anim.Advance(dt)
	}
	if !g.IsAnimating() && g.queued != core.CmdNone {
		cmd := g.queued
		g.queued = core.CmdNone
		g.apply(cmd)
	}
}

func (g *Game) apply(cmd core.Command) {
	events, changed := g.state.Apply(cmd)
	if changed && len(events) > 0 {
		g.anim.Start(events)
	}
}
