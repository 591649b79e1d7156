// Package route defines core types, configuration options and sentinel
// errors for the oriented-agent route solver.
package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/geraud-g/reindeer/grid"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrInvalidStart indicates the start state is out of bounds, on a wall,
	// or carries an unknown orientation. Detected before any search state
	// is allocated.
	ErrInvalidStart = errors.New("route: invalid start state")

	// ErrInvalidGoal indicates the goal position is out of bounds or on a wall.
	ErrInvalidGoal = errors.New("route: invalid goal position")

	// ErrUnreachable indicates the search ended without settling any state
	// on the goal position. It is never reported as a numeric cost.
	ErrUnreachable = errors.New("route: goal unreachable from start")

	// ErrBadCost indicates a move or turn cost that is not strictly positive.
	ErrBadCost = errors.New("route: action cost must be positive")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("route: MaxCost must be non-negative")
)

// Default action costs.
const (
	DefaultMoveCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// State is the unit of search: a cell plus the facing held on it.
// Two states are equal iff both fields match.
type State struct {
	Pos    grid.Position
	Facing grid.Orientation
}

// String renders the state as "(col,row)Facing".
func (s State) String() string {
	return fmt.Sprintf("%s%s", s.Pos, s.Facing)
}

// Action names one of the three moves available from every state.
type Action uint8

const (
	Move Action = iota
	TurnLeft
	TurnRight
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Move:
		return "Move"
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Step is one legal transition out of a state with its incremental cost.
type Step struct {
	Action Action
	To     State
	Cost   int64
}

// Result is the outcome of a Solve call.
//
// Cost is only meaningful when Solve returns a nil error. The counters are
// filled on ErrUnreachable too, so runs can be compared for determinism.
type Result struct {
	Cost    int64   // minimal cumulative cost to reach the goal position
	Arrival State   // settled state on the goal position (facing on arrival)
	Path    []State // start → Arrival, only with WithReturnPath
	Settled int     // non-stale pops
	Stale   int     // discarded stale pops
	Pushed  int     // frontier insertions, including the start entry
}

// Options configures the behavior of Solve.
//
// MoveCost    - cost of one step forward. Must be > 0. Default 1.
// TurnCost    - cost of one 90° rotation. Must be > 0. Default 1000.
// ReturnPath  - if true, record predecessors and fill Result.Path.
// MaxCost     - stop exploring once the cheapest frontier entry exceeds it.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Precheck    - reject start/goal pairs lying in different open regions
//
//	before searching. Default true.
//
// OnSettle    - called for every non-stale pop, in pop order.
type Options struct {
	MoveCost   int64
	TurnCost   int64
	ReturnPath bool
	MaxCost    int64
	Precheck   bool
	OnSettle   func(cost int64, s State)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMoveCost sets the cost of one step forward.
// Panics with ErrBadCost if cost ≤ 0.
func WithMoveCost(cost int64) Option {
	return func(o *Options) {
		if cost <= 0 {
			panic(ErrBadCost.Error())
		}
		o.MoveCost = cost
	}
}

// WithTurnCost sets the cost of one left or right rotation.
// Panics with ErrBadCost if cost ≤ 0.
func WithTurnCost(cost int64) Option {
	return func(o *Options) {
		if cost <= 0 {
			panic(ErrBadCost.Error())
		}
		o.TurnCost = cost
	}
}

// WithReturnPath enables predecessor tracking; Result.Path is filled on success.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps exploration: once the cheapest frontier entry costs more
// than max the search stops and reports ErrUnreachable.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithoutPrecheck disables the region check, forcing a full search even
// when start and goal are provably disconnected.
func WithoutPrecheck() Option {
	return func(o *Options) {
		o.Precheck = false
	}
}

// WithOnSettle registers a hook invoked for every non-stale pop.
// A nil hook is ignored.
func WithOnSettle(fn func(cost int64, s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with the puzzle
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - MoveCost:   1.
//   - TurnCost:   1000.
//   - ReturnPath: false.
//   - MaxCost:    math.MaxInt64 (no cap).
//   - Precheck:   true.
//   - OnSettle:   no-op.
func DefaultOptions() Options {
	return Options{
		MoveCost:   DefaultMoveCost,
		TurnCost:   DefaultTurnCost,
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		Precheck:   true,
		OnSettle:   func(int64, State) {},
	}
}
