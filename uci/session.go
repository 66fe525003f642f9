package uci

import (
	"refute/board"
)

// Session is one game prefix: an immutable start position and the moves
// played from it. The working board is always rebuilt by replay.
type Session struct {
	start board.Board
	moves []board.Move
}

// NewSession returns a session rooted at start. moves must already be
// legal in sequence.
func NewSession(start board.Board, moves []board.Move) *Session {
	return &Session{start: start, moves: append([]board.Move(nil), moves...)}
}

func (s *Session) Start() board.Board { return s.start }

func (s *Session) Moves() []board.Move {
	return append([]board.Move(nil), s.moves...)
}

// Board replays the move list from the start position.
func (s *Session) Board() board.Board {
	b := s.start
	for _, m := range s.moves {
		b = b.ApplyMove(m)
	}
	return b
}
