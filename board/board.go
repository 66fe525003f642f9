package board

import (
	"errors"
	"fmt"
	"strings"
)

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int8

const NoSquare Square = -1

// Named squares used by the castling rules.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

var ErrInvalidSquare = errors.New("invalid square")

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the zero-based file (0 = a).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the zero-based rank (0 = rank "1").
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	return NewSquare(int(file-'a'), int(rank-'1')), nil
}

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool { return c&r == r }

func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if c.Has(WhiteKingSide) {
		sb.WriteByte('K')
	}
	if c.Has(WhiteQueenSide) {
		sb.WriteByte('Q')
	}
	if c.Has(BlackKingSide) {
		sb.WriteByte('k')
	}
	if c.Has(BlackQueenSide) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// Board is a complete position snapshot. It is a plain value: assigning a
// Board copies every square, so a worker can own its copy outright.
type Board struct {
	squares [64]Piece

	// SideToMove is the side to play next.
	SideToMove Color

	// Castling holds the remaining castling rights.
	Castling CastlingRights

	// EnPassant is the square a pawn passed over on the previous
	// double advance, or NoSquare.
	EnPassant Square

	// HalfmoveClock counts half-moves since the last capture or pawn move.
	HalfmoveClock int

	// FullmoveNumber increments after every Black move.
	FullmoveNumber int
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SetPiece places p on sq, replacing whatever was there.
func (b *Board) SetPiece(sq Square, p Piece) { b.squares[sq] = p }

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { b.squares[sq] = Empty }

// KingSquare returns the square of the given side's king, or NoSquare.
func (b *Board) KingSquare(c Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq].Is(c, King) {
			return sq
		}
	}
	return NoSquare
}

// String draws the board from White's point of view, rank 8 first.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteByte(b.squares[NewSquare(file, rank)].Char())
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
