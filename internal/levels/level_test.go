package levels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcadelab/infestation/internal/core"
	"github.com/arcadelab/infestation/internal/game"
)

const sampleLevel = `
id: sample
name: Sample
rows:
  - ">,.,R"
  - ".,#,."
portals:
  - { x: 0, y: 1, to: sample }
notes:
  - { x: 2, y: 1, text: "dead end" }
`

func TestParseSampleLevel(t *testing.T) {
	lvl, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.ID != "sample" || lvl.Name != "Sample" {
		t.Errorf("id/name = %q/%q", lvl.ID, lvl.Name)
	}
	if lvl.Grid.Width() != 3 || lvl.Grid.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", lvl.Grid.Width(), lvl.Grid.Height())
	}
	if dest, ok := lvl.Grid.PortalAt(core.P(0, 1)); !ok || dest != "sample" {
		t.Errorf("portal = %q, %v", dest, ok)
	}
	if text, ok := lvl.Grid.NoteAt(core.P(2, 1)); !ok || text != "dead end" {
		t.Errorf("note = %q, %v", text, ok)
	}
	// The rat spawns looking at the player to its west.
	if c := lvl.Grid.At(core.P(2, 0)); c != game.Rat(core.DirW) {
		t.Errorf("rat = %+v, want facing west", c)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"missing id", "rows:\n  - \">\"", "missing id"},
		{"unknown code", "id: x\nrows:\n  - \">,?\"", "unknown code"},
		{"multi-rune code", "id: x\nrows:\n  - \">,RR\"", "bad code"},
		{"ragged rows", "id: x\nrows:\n  - \">,.\"\n  - \".\"", "row 1"},
		{"no player", "id: x\nrows:\n  - \".,.\"", "no player"},
		{"portal off board", "id: x\nrows:\n  - \">,.\"\nportals:\n  - { x: 9, y: 0, to: x }", "off the board"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestEmbeddedCampaign(t *testing.T) {
	r, err := Embedded()
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() == 0 {
		t.Fatal("embedded campaign is empty")
	}
	if r.First() != "hub" {
		t.Errorf("first level = %q, want hub", r.First())
	}
	hub, ok := r.Get("hub")
	if !ok {
		t.Fatal("hub missing")
	}
	if len(hub.Grid.Portals()) == 0 {
		t.Error("hub has no portals")
	}
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	r, err := Embedded()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := r.Get("hub")
	pos, _, _ := a.Grid.FindPlayer()
	a.Grid.Set(pos, game.Wall())

	b, _ := r.Get("hub")
	if _, _, ok := b.Grid.FindPlayer(); !ok {
		t.Error("mutating one copy affected the registry")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	good := `
id: custom
name: Custom
rows:
  - ">,R"
`
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a level"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
	if _, ok := r.Get("custom"); !ok {
		t.Error("custom level missing")
	}
}

func TestLoadDirRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	lvl := "id: dup\nrows:\n  - \">\"\n"
	os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(lvl), 0o644)
	os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(lvl), 0o644)
	if _, err := LoadDir(dir); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("err = %v, want duplicate id", err)
	}
}

func TestDanglingPortalRejected(t *testing.T) {
	dir := t.TempDir()
	lvl := "id: solo\nrows:\n  - \">,.\"\nportals:\n  - { x: 1, y: 0, to: nowhere }\n"
	os.WriteFile(filepath.Join(dir, "solo.yaml"), []byte(lvl), 0o644)
	if _, err := LoadDir(dir); err == nil || !strings.Contains(err.Error(), "unknown level") {
		t.Errorf("err = %v, want dangling portal error", err)
	}
}
