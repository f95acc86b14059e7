package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var embedded embed.FS

// Registry is an immutable set of levels keyed by id. Boards handed out
// by Get are clones, so playthroughs never corrupt the registry.
type Registry struct {
	levels map[string]*Level
	order  []string
}

// Embedded loads the campaign compiled into the binary.
func Embedded() (*Registry, error) {
	return loadFS(embedded, "data")
}

// LoadDir loads every .yaml/.yml level in a directory. Files load in
// name order so listings are stable.
func LoadDir(dir string) (*Registry, error) {
	return loadFS(os.DirFS(dir), ".")
}

func loadFS(fsys fs.FS, root string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	r := &Registry{levels: make(map[string]*Level)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.Join(root, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", e.Name(), err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		if _, dup := r.levels[lvl.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate level id %q", e.Name(), lvl.ID)
		}
		r.levels[lvl.ID] = lvl
		r.order = append(r.order, lvl.ID)
	}
	if len(r.levels) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	if err := r.validatePortals(); err != nil {
		return nil, err
	}
	return r, nil
}

// validatePortals rejects portals pointing at level ids the registry
// does not hold; a dangling portal would strand the player at runtime.
func (r *Registry) validatePortals() error {
	for _, id := range r.order {
		for _, p := range r.levels[id].Grid.Portals() {
			if _, ok := r.levels[p.Level]; !ok {
				return fmt.Errorf("level %q: portal at (%d,%d) targets unknown level %q",
					id, p.Pos.X, p.Pos.Y, p.Level)
			}
		}
	}
	return nil
}

// Get returns a fresh copy of a level's board.
func (r *Registry) Get(id string) (*Level, bool) {
	lvl, ok := r.levels[id]
	if !ok {
		return nil, false
	}
	return &Level{ID: lvl.ID, Name: lvl.Name, Grid: lvl.Grid.Clone()}, true
}

// IDs returns level ids in load order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Names maps level ids to display names.
func (r *Registry) Names() map[string]string {
	out := make(map[string]string, len(r.levels))
	for id, lvl := range r.levels {
		out[id] = lvl.Name
	}
	return out
}

// Len returns the number of levels.
func (r *Registry) Len() int { return len(r.order) }

// First returns the id of the first level in load order. Used as the
// campaign entry point.
func (r *Registry) First() string {
	if len(r.order) == 0 {
		return ""
	}
	return r.order[0]
}

