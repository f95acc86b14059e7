// Package levels loads playable boards from YAML files. A campaign is
// embedded in the binary; external directories can override or extend it.
package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arcadelab/infestation/internal/core"
	"github.com/arcadelab/infestation/internal/game"
)

// file is the raw YAML shape of one level.
type file struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Rows    []string     `yaml:"rows"`
	Portals []portalSpec `yaml:"portals"`
	Notes   []noteSpec   `yaml:"notes"`
}

type portalSpec struct {
	X  int    `yaml:"x"`
	Y  int    `yaml:"y"`
	To string `yaml:"to"`
}

type noteSpec struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Text string `yaml:"text"`
}

// Level is a parsed, playable board.
type Level struct {
	ID   string
	Name string
	Grid *game.Grid
}

// Parse decodes one level file. Rows are comma-separated cell codes; all
// rows must have equal length and the board must hold exactly one
// player. Enemies come out facing the player.
func Parse(data []byte) (*Level, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if f.ID == "" {
		return nil, fmt.Errorf("parse level: missing id")
	}
	if f.Name == "" {
		f.Name = f.ID
	}

	grid, err := buildGrid(&f)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", f.ID, err)
	}
	return &Level{ID: f.ID, Name: f.Name, Grid: grid}, nil
}

func buildGrid(f *file) (*game.Grid, error) {
	rows := make([][]game.Cell, len(f.Rows))
	var player core.Pos
	for y, line := range f.Rows {
		for x, code := range strings.Split(line, ",") {
			code = strings.TrimSpace(code)
			if len([]rune(code)) != 1 {
				return nil, fmt.Errorf("cell (%d,%d): bad code %q", x, y, code)
			}
			c, ok := game.CellFromRune([]rune(code)[0])
			if !ok {
				return nil, fmt.Errorf("cell (%d,%d): unknown code %q", x, y, code)
			}
			if c.IsPlayer() {
				player = core.P(x, y)
			}
			rows[y] = append(rows[y], c)
		}
	}

	portals := make(map[core.Pos]string, len(f.Portals))
	for _, p := range f.Portals {
		portals[core.P(p.X, p.Y)] = p.To
	}
	notes := make(map[core.Pos]string, len(f.Notes))
	for _, n := range f.Notes {
		notes[core.P(n.X, n.Y)] = n.Text
	}

	grid, err := game.NewGrid(rows, portals, notes)
	if err != nil {
		return nil, err
	}

	for _, p := range f.Portals {
		if !grid.InBounds(core.P(p.X, p.Y)) {
			return nil, fmt.Errorf("portal to %q at (%d,%d) is off the board", p.To, p.X, p.Y)
		}
	}
	for _, n := range f.Notes {
		if !grid.InBounds(core.P(n.X, n.Y)) {
			return nil, fmt.Errorf("note at (%d,%d) is off the board", n.X, n.Y)
		}
	}

	// Enemies spawn looking at the player.
	for _, pos := range grid.Find(game.Cell.IsEnemy) {
		c := grid.At(pos)
		if dir, ok := core.Dir8FromDelta(player.Sub(pos)); ok {
			c.Facing = dir
			grid.Set(pos, c)
		}
	}
	return grid, nil
}
