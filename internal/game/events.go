package game

import "github.com/arcadelab/infestation/internal/core"

// EventKind categorizes the visual events a resolved turn produces.
type EventKind int

const (
	// EventMove is an entity moving From→To. From == To is a facing
	// change in place (rendered instantly).
	EventMove EventKind = iota
	// EventDestroy is an entity or prop removed from the board (swallowed
	// by a void, crushed, burned).
	EventDestroy
	// EventTrigger records a trigger pad being stepped on.
	EventTrigger
	// EventZap is a trigger cell sealing into a wall during a zap wave.
	EventZap
	// EventExplode is one cell converted by an explosion wave.
	EventExplode
)

// Event is one entry of the ordered event log. The log records state
// changes in exactly the order the resolver applied them; the animation
// layer consumes it and nothing else depends on it — dropping the log
// never affects correctness.
type Event struct {
	Kind    EventKind
	Cell    Cell // the entity involved (post-move facing for EventMove)
	From    core.Pos
	To      core.Pos
	Trigger uint8 // trigger number for EventTrigger
	Wave    int   // 1-based hazard wave number for EventZap/EventExplode
}

// EventLog is the ordered record of one turn's state changes.
type EventLog []Event

func (l *EventLog) move(c Cell, from, to core.Pos) {
	*l = append(*l, Event{Kind: EventMove, Cell: c, From: from, To: to})
}

func (l *EventLog) destroy(c Cell, at core.Pos) {
	*l = append(*l, Event{Kind: EventDestroy, Cell: c, From: at, To: at})
}

// destroyInWave records a casualty of a hazard wave; the wave number keys
// the event into that wave's animation stage.
func (l *EventLog) destroyInWave(c Cell, at core.Pos, wave int) {
	*l = append(*l, Event{Kind: EventDestroy, Cell: c, From: at, To: at, Wave: wave})
}

func (l *EventLog) trigger(n uint8, at core.Pos) {
	*l = append(*l, Event{Kind: EventTrigger, Trigger: n, From: at, To: at})
}

func (l *EventLog) zap(at core.Pos, wave int) {
	*l = append(*l, Event{Kind: EventZap, From: at, To: at, Wave: wave})
}

func (l *EventLog) explode(at core.Pos, wave int) {
	*l = append(*l, Event{Kind: EventExplode, From: at, To: at, Wave: wave})
}

// Moves returns only the movement events, in order.
func (l EventLog) Moves() []Event {
	var out []Event
	for _, e := range l {
		if e.Kind == EventMove {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of events of the given kind.
func (l EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
