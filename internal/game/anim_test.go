package game

import (
	"testing"
	"time"

	"github.com/arcadelab/infestation/internal/core"
)

func TestBuildStagesGroupsByKindAndWave(t *testing.T) {
	var log EventLog
	log.move(Rat(core.DirW), core.P(2, 0), core.P(1, 0))
	log.destroy(Web(), core.P(1, 0))
	log.zap(core.P(3, 0), 1)
	log.explode(core.P(4, 0), 2)
	log.explode(core.P(5, 0), 2)
	log.explode(core.P(4, 1), 3)

	stages := buildStages(log)
	kinds := []StageKind{}
	for _, s := range stages {
		kinds = append(kinds, s.Kind)
	}
	want := []StageKind{StageMove, StageZap, StageExplode, StageExplode}
	if len(kinds) != len(want) {
		t.Fatalf("stages = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("stages = %v, want %v", kinds, want)
		}
	}
	if len(stages[0].Events) != 2 {
		t.Errorf("move stage holds %d events, want move + destroy", len(stages[0].Events))
	}
	if len(stages[2].Events) != 2 {
		t.Errorf("first explode wave holds %d events, want 2", len(stages[2].Events))
	}
}

func TestBuildStagesKeepsWaveCasualtiesWithTheirWave(t *testing.T) {
	var log EventLog
	log.move(Player(core.East), core.P(0, 0), core.P(1, 0))
	log.destroyInWave(Rat(core.DirW), core.P(2, 0), 1)
	log.explode(core.P(2, 0), 1)
	log.destroyInWave(Web(), core.P(3, 0), 2)
	log.explode(core.P(3, 0), 2)

	stages := buildStages(log)
	if len(stages) != 3 {
		t.Fatalf("got %d stages, want move + two explode waves", len(stages))
	}
	if stages[0].Kind != StageMove || len(stages[0].Events) != 1 {
		t.Errorf("stage 0 = %v with %d events, want lone move", stages[0].Kind, len(stages[0].Events))
	}
	for i := 1; i <= 2; i++ {
		if stages[i].Kind != StageExplode || len(stages[i].Events) != 2 {
			t.Errorf("stage %d = %v with %d events, want explode wave with its casualty",
				i, stages[i].Kind, len(stages[i].Events))
		}
	}
}

func TestAnimatorAdvancesAcrossStages(t *testing.T) {
	a := NewAnimator(Timing{Move: 100 * time.Millisecond, Wave: 50 * time.Millisecond})
	var log EventLog
	log.move(Plank(), core.P(0, 0), core.P(1, 0))
	log.zap(core.P(2, 0), 1)
	a.Start(log)

	if a.Done() {
		t.Fatal("animator done before advancing")
	}
	a.Advance(120 * time.Millisecond)
	st, progress, ok := a.Current()
	if !ok || st.Kind != StageZap {
		t.Fatalf("expected zap stage, got %+v, %v", st, ok)
	}
	if progress < 0.39 || progress > 0.41 {
		t.Errorf("progress = %v, want 0.4 (leftover time rolls over)", progress)
	}
	a.Advance(time.Second)
	if !a.Done() {
		t.Error("animator should have finished")
	}
}

func TestAnimatorSkipAndEmptyLog(t *testing.T) {
	a := NewAnimator(DefaultTiming())
	a.Start(nil)
	if !a.Done() {
		t.Error("empty log must finish immediately")
	}

	var log EventLog
	log.move(Plank(), core.P(0, 0), core.P(1, 0))
	a.Start(log)
	if a.Done() {
		t.Fatal("playback should be running")
	}
	a.Skip()
	if !a.Done() {
		t.Error("skip must finish playback")
	}
}
