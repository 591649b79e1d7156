// Package mazefile reads character maps and batch manifests into solver
// inputs, and draws solved routes back onto the map.
package mazefile

import (
	"errors"

	"github.com/geraud-g/reindeer/grid"
	"github.com/geraud-g/reindeer/route"
)

// Map characters.
const (
	WallRune  = '#'
	OpenRune  = '.'
	StartRune = 'S'
	EndRune   = 'E'
)

// StartFacing is the implicit orientation of the agent on the start marker.
const StartFacing = grid.East

// Sentinel errors for parsing.
var (
	// ErrNoStart indicates the map has no start marker.
	ErrNoStart = errors.New("mazefile: no start marker 'S'")

	// ErrNoEnd indicates the map has no end marker.
	ErrNoEnd = errors.New("mazefile: no end marker 'E'")

	// ErrDuplicateMarker indicates a start or end marker appears twice.
	ErrDuplicateMarker = errors.New("mazefile: duplicate marker")

	// ErrEmptyManifest indicates a manifest that lists no mazes.
	ErrEmptyManifest = errors.New("mazefile: manifest lists no mazes")

	// ErrManifestEntry indicates an invalid manifest entry.
	ErrManifestEntry = errors.New("mazefile: invalid manifest entry")
)

// Maze is a parsed map: the obstacle grid plus the start state and the
// end position.
type Maze struct {
	Grid  *grid.Grid
	Start route.State
	End   grid.Position
}
