package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

// Move is a half-move: source, destination and an optional promotion kind.
// Moves compare with ==.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NullMove is the "0000" move. Applying it leaves the board unchanged.
var NullMove = Move{}

// NewMove constructs a non-promoting move.
func NewMove(from, to Square) Move { return Move{From: from, To: to} }

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m == NullMove }

// String produces the long-algebraic form, e.g. "e2e4", "e7e8q" or "0000".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Char())
	}
	return s
}

// ParseMove converts a UCI string (e2e4, e7e8q, 0000) into a Move.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.ToLower(strings.TrimSpace(movestr))
	if movestr == "0000" {
		return NullMove, nil
	}
	if len(movestr) < 4 || len(movestr) > 5 {
		return NullMove, fmt.Errorf("%w: %q has bad length", ErrInvalidMove, movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	m := Move{From: from, To: to}
	if len(movestr) == 5 {
		switch k := kindFromChar(movestr[4]); k {
		case Queen, Rook, Bishop, Knight:
			m.Promotion = k
		default:
			return NullMove, fmt.Errorf("%w: invalid promotion piece %q", ErrInvalidMove, movestr[4])
		}
	}
	if from == to {
		return NullMove, fmt.Errorf("%w: %q does not move", ErrInvalidMove, movestr)
	}
	return m, nil
}
