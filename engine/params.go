package engine

import (
	"time"

	"refute/board"
)

// Params holds the bounds requested by one "go" command. A Params value is
// handed to exactly one worker and never modified afterwards.
type Params struct {
	SearchMoves []board.Move
	Ponder      bool
	WTime       time.Duration
	BTime       time.Duration
	WInc        time.Duration
	BInc        time.Duration
	MovesToGo   int
	Depth       int
	Nodes       uint64
	Mate        int
	MoveTime    time.Duration
	Infinite    bool
}

// Options are the engine settings in force when a search starts.
type Options struct {
	DefaultDepth    int
	MaxDepth        int
	PawnAdvancement bool
}

// DefaultOptions mirror the configuration defaults.
func DefaultOptions() Options {
	return Options{DefaultDepth: 3, MaxDepth: 16, PawnAdvancement: true}
}

func (o Options) evaluator() Evaluator {
	return Evaluator{PawnAdvancement: o.PawnAdvancement}
}
