package game

import "github.com/arcadelab/infestation/internal/core"

// hazardPhase drains the queued trigger and explosion waves, alternating
// until both queues are empty. A zap wave may detonate explosives and an
// explosion may never re-arm a trigger, so the alternation terminates:
// each wave only removes material from the board.
func (r *resolver) hazardPhase() {
	for len(r.pendingTriggers) > 0 || len(r.pendingExplosions) > 0 {
		if len(r.pendingTriggers) > 0 {
			r.zapWave()
		}
		if len(r.pendingExplosions) > 0 {
			r.explodeWave()
		}
	}
}

// zapWave seals every trigger pad matching the queued numbers into a
// wall, then spreads: empty 8-neighbors of each sealed cell also turn to
// wall, and explosive 8-neighbors detonate.
func (r *resolver) zapWave() {
	numbers := r.pendingTriggers
	r.pendingTriggers = nil
	r.wave++

	var sealed []core.Pos
	for _, pos := range r.grid.Find(func(c Cell) bool {
		if c.Kind != CellTrigger {
			return false
		}
		for _, n := range numbers {
			if c.Trigger == n {
				return true
			}
		}
		return false
	}) {
		r.grid.Set(pos, Wall())
		r.events.zap(pos, r.wave)
		sealed = append(sealed, pos)
	}

	for _, pos := range sealed {
		for _, dir := range core.Dirs8() {
			n := pos.Add(dir.Delta())
			if !r.grid.InBounds(n) {
				continue
			}
			switch r.grid.At(n).Kind {
			case CellEmpty:
				r.grid.Set(n, Wall())
			case CellExplosive:
				r.queueExplosion(n)
			}
		}
	}
}

// explodeWave detonates the queued centers. Each detonation converts its
// own cell and its four orthogonal neighbors to Empty, destroying
// whatever stood there; walls, voids, and trigger pads withstand the
// blast, and the player survives it only under the configured rule.
// Explosives caught in a blast join the next wave.
func (r *resolver) explodeWave() {
	wave := r.pendingExplosions
	r.pendingExplosions = nil
	r.wave++

	// Clear all centers before scanning neighbors so two adjacent
	// explosives in the same wave don't re-queue each other.
	for _, pos := range wave {
		if c := r.grid.At(pos); c.Kind != CellEmpty && c.Kind != CellWall {
			if c.Kind != CellExplosive {
				// Standing on the charge is fatal regardless of rules.
				r.events.destroyInWave(c, pos, r.wave)
			}
			r.grid.Set(pos, Empty())
		}
		r.events.explode(pos, r.wave)
	}

	for _, pos := range wave {
		for _, dir := range core.Dirs4() {
			n := pos.Add(dir.Delta())
			if !r.grid.InBounds(n) {
				continue
			}
			c := r.grid.At(n)
			switch c.Kind {
			case CellExplosive:
				r.queueExplosion(n)
			case CellEnemy, CellPlank, CellWeb:
				r.events.destroyInWave(c, n, r.wave)
				r.grid.Set(n, Empty())
				r.events.explode(n, r.wave)
			case CellPlayer:
				if !r.rules.PlayerSurvivesBlast {
					r.events.destroyInWave(c, n, r.wave)
					r.grid.Set(n, Empty())
					r.events.explode(n, r.wave)
				}
			case CellEmpty, CellWall, CellVoid, CellTrigger:
			}
		}
	}
}
