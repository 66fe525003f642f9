package engine

import (
	"fmt"
	"strings"
	"time"

	"refute/board"
)

// PVLine is a principal variation, root move first.
type PVLine struct {
	Moves []board.Move
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update makes m followed by child's line the new variation.
func (pv *PVLine) Update(m board.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], m)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: append([]board.Move(nil), pv.Moves...)}
}

// GetPVMove returns the first move of the line, or the null move.
func (pv PVLine) GetPVMove() board.Move {
	if len(pv.Moves) == 0 {
		return board.NullMove
	}
	return pv.Moves[0]
}

func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Info is one progress report, emitted after each completed iteration.
type Info struct {
	SearchID string
	Depth    int
	Score    string
	Nodes    uint64
	Elapsed  time.Duration
	PV       PVLine
}

// String renders the payload of a UCI info line.
func (i Info) String() string {
	s := fmt.Sprintf("depth %d score %s nodes %d time %d", i.Depth, i.Score, i.Nodes, i.Elapsed.Milliseconds())
	if len(i.PV.Moves) > 0 {
		s += " pv " + i.PV.String()
	}
	return s
}

// getMateOrCPScore renders a White-positive score from the point of view of
// the side to move at the root, as "cp N" or "mate N".
func getMateOrCPScore(score int32, rootDepth int, us board.Color) string {
	if us == board.Black {
		score = -score
	}
	if Abs(score) < Checkmate {
		return fmt.Sprintf("cp %d", score)
	}
	plies := rootDepth - int(Abs(score)-Checkmate)
	mateIn := Max((plies+1)/2, 1)
	if score < 0 {
		mateIn = -mateIn
	}
	return fmt.Sprintf("mate %d", mateIn)
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int32) bool {
	return Abs(score) >= Checkmate
}
