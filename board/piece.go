package board

// Color is the side owning a piece or the side to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Char returns the lowercase letter used for the kind in FEN and promotion suffixes.
func (k PieceKind) Char() byte {
	switch k {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return '?'
	}
}

// kindFromChar is the inverse of Char for lowercase letters.
func kindFromChar(ch byte) PieceKind {
	switch ch {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is either Empty or an occupied (Color, Kind) pair. The zero value is Empty.
// Values are only built through NewPiece, so a piece never carries a color
// without a kind.
type Piece struct {
	occupied bool
	color    Color
	kind     PieceKind
}

// Empty is the value of an unoccupied square.
var Empty = Piece{}

// NewPiece combines a side and a kind. NoKind yields Empty.
func NewPiece(c Color, k PieceKind) Piece {
	if k == NoKind || k > King {
		return Empty
	}
	return Piece{occupied: true, color: c, kind: k}
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool { return !p.occupied }

// Color returns the owner. Only meaningful for occupied squares.
func (p Piece) Color() Color { return p.color }

// Kind returns the piece type, NoKind for Empty.
func (p Piece) Kind() PieceKind { return p.kind }

// Is reports whether the piece is occupied with the given side and kind.
func (p Piece) Is(c Color, k PieceKind) bool {
	return p.occupied && p.color == c && p.kind == k
}

// Char converts the piece to its FEN letter, uppercase for White. Empty renders as '.'.
func (p Piece) Char() byte {
	if !p.occupied {
		return '.'
	}
	ch := p.kind.Char()
	if p.color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

// PieceFromChar converts a FEN letter to a Piece. Unknown letters yield Empty.
func PieceFromChar(ch byte) Piece {
	if ch >= 'A' && ch <= 'Z' {
		return NewPiece(White, kindFromChar(ch+('a'-'A')))
	}
	return NewPiece(Black, kindFromChar(ch))
}
