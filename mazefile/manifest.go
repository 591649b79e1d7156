package mazefile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/geraud-g/reindeer/route"
)

// Manifest lists mazes to solve as one batch.
//
//	workers: 4
//	mazes:
//	  - name: small
//	    file: example_a.txt
//	    expect: 7036
//	  - file: example_b.txt
//	    turn_cost: 500
//
// Relative file paths are resolved against the manifest's directory.
type Manifest struct {
	Workers int     `yaml:"workers,omitempty"`
	Mazes   []Entry `yaml:"mazes"`
}

// Entry is one maze of a Manifest. Zero costs mean the solver defaults.
type Entry struct {
	Name     string `yaml:"name,omitempty"`
	File     string `yaml:"file"`
	MoveCost int64  `yaml:"move_cost,omitempty"`
	TurnCost int64  `yaml:"turn_cost,omitempty"`
	Expect   *int64 `yaml:"expect,omitempty"`
}

// Options converts the entry's cost overrides into solver options.
func (e Entry) Options() []route.Option {
	var opts []route.Option
	if e.MoveCost > 0 {
		opts = append(opts, route.WithMoveCost(e.MoveCost))
	}
	if e.TurnCost > 0 {
		opts = append(opts, route.WithTurnCost(e.TurnCost))
	}
	return opts
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("mazefile: %s: %w", path, err)
	}
	if len(m.Mazes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyManifest, path)
	}

	dir := filepath.Dir(path)
	for i := range m.Mazes {
		e := &m.Mazes[i]
		if e.File == "" {
			return nil, fmt.Errorf("%w: entry %d has no file", ErrManifestEntry, i)
		}
		if e.MoveCost < 0 || e.TurnCost < 0 {
			return nil, fmt.Errorf("%w: entry %d has a negative cost", ErrManifestEntry, i)
		}
		if !filepath.IsAbs(e.File) {
			e.File = filepath.Join(dir, e.File)
		}
		if e.Name == "" {
			e.Name = filepath.Base(e.File)
		}
	}

	return &m, nil
}

// Jobs loads every maze of the manifest and returns them as solver jobs,
// in manifest order. The first maze that fails to load aborts the call.
func (m *Manifest) Jobs() ([]route.Job, error) {
	jobs := make([]route.Job, 0, len(m.Mazes))
	for _, e := range m.Mazes {
		mz, err := Load(e.File)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		jobs = append(jobs, route.Job{
			Name:    e.Name,
			Grid:    mz.Grid,
			Start:   mz.Start,
			Goal:    mz.End,
			Options: e.Options(),
		})
	}
	return jobs, nil
}
