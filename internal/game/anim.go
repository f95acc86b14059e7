package game

import "time"

// StageKind is the visual treatment of an animation stage.
type StageKind int

const (
	// StageMove slides entities from their old to new cells.
	StageMove StageKind = iota
	// StageZap flashes trigger cells sealing into walls.
	StageZap
	// StageExplode flashes one explosion wave.
	StageExplode
)

// Stage is one timed step of a turn's animation. All events in a stage
// play simultaneously; stages play in sequence.
type Stage struct {
	Kind   StageKind
	Events []Event
}

// Timing sets per-stage durations.
type Timing struct {
	Move time.Duration
	Wave time.Duration
}

// DefaultTiming is tuned so a full multi-wave turn stays under a second.
func DefaultTiming() Timing {
	return Timing{Move: 150 * time.Millisecond, Wave: 120 * time.Millisecond}
}

// Animator plays back one turn's event log as a sequence of timed
// stages. It is a pure projection: the grid has already changed by the
// time the animator starts, and skipping the animation is always safe.
type Animator struct {
	timing  Timing
	stages  []Stage
	index   int
	elapsed time.Duration
}

// NewAnimator returns an idle animator.
func NewAnimator(t Timing) *Animator {
	return &Animator{timing: t}
}

// Start begins playback of a turn's events. An empty log leaves the
// animator done.
func (a *Animator) Start(log EventLog) {
	a.stages = buildStages(log)
	a.index = 0
	a.elapsed = 0
}

// buildStages groups the ordered event log into stages: a run of
// movement (and the destructions it causes) forms one move stage; zap
// and explode events group by their wave number, so chained waves flash
// one after another instead of all at once.
func buildStages(log EventLog) []Stage {
	var stages []Stage
	lastWave := 0
	push := func(kind StageKind, e Event) {
		if n := len(stages); n > 0 && stages[n-1].Kind == kind && e.Wave == lastWave {
			stages[n-1].Events = append(stages[n-1].Events, e)
			return
		}
		stages = append(stages, Stage{Kind: kind, Events: []Event{e}})
		lastWave = e.Wave
	}
	for _, e := range log {
		switch e.Kind {
		case EventZap:
			push(StageZap, e)
		case EventExplode:
			push(StageExplode, e)
		case EventDestroy:
			// Wave casualties flash with their wave, not with movement.
			if e.Wave > 0 {
				push(StageExplode, e)
			} else {
				push(StageMove, e)
			}
		default:
			push(StageMove, e)
		}
	}
	return stages
}

// Done reports whether playback has finished (or never started).
func (a *Animator) Done() bool {
	return a.index >= len(a.stages)
}

// Advance progresses playback by dt, rolling leftover time into the next
// stage so a large dt can cross several stages.
func (a *Animator) Advance(dt time.Duration) {
	a.elapsed += dt
	for !a.Done() {
		d := a.stageDuration(a.stages[a.index].Kind)
		if a.elapsed < d {
			return
		}
		a.elapsed -= d
		a.index++
	}
}

// Skip jumps to the end of playback.
func (a *Animator) Skip() {
	a.index = len(a.stages)
	a.elapsed = 0
}

// Current returns the active stage and its progress in [0,1). Returns
// false when playback is done.
func (a *Animator) Current() (Stage, float64, bool) {
	if a.Done() {
		return Stage{}, 0, false
	}
	st := a.stages[a.index]
	d := a.stageDuration(st.Kind)
	if d <= 0 {
		return st, 1, true
	}
	return st, float64(a.elapsed) / float64(d), true
}

func (a *Animator) stageDuration(kind StageKind) time.Duration {
	if kind == StageMove {
		return a.timing.Move
	}
	return a.timing.Wave
}
