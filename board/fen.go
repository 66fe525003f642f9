package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

// ErrMissingSideToMove is reported, not returned, when the active color field
// is absent and White was assumed.
var ErrMissingSideToMove = errors.New("FEN has no active color, assuming white")

// StartPosition returns the standard initial position.
func StartPosition() Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseFEN parses a FEN string into a Board. Trailing fields may be omitted;
// see ParseFENWithWarnings for the defaults applied.
func ParseFEN(fen string) (Board, error) {
	b, _, err := ParseFENWithWarnings(fen)
	return b, err
}

// ParseFENWithWarnings parses a FEN string and also returns the tolerated
// defects. Only the piece placement field is mandatory. A missing active
// color defaults to White (reported as ErrMissingSideToMove), missing castling
// and en passant fields default to none, and missing clocks default to 0.
func ParseFENWithWarnings(fen string) (Board, []error, error) {
	var warnings []error
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return Board{}, nil, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}
	if len(fields) > 6 {
		return Board{}, nil, fmt.Errorf("%w: %d fields", ErrInvalidFEN, len(fields))
	}

	b := Board{EnPassant: NoSquare}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, nil, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return Board{}, nil, fmt.Errorf("%w: empty rank description", ErrInvalidFEN)
		}
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return Board{}, nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
				}
				continue
			}
			piece := PieceFromChar(ch)
			if piece.IsEmpty() {
				return Board{}, nil, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return Board{}, nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			b.squares[NewSquare(file, rank)] = piece
			file++
		}
		if file != 8 {
			return Board{}, nil, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, rank+1)
		}
	}

	// 2. Side to move
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			b.SideToMove = White
		case "b":
			b.SideToMove = Black
		default:
			return Board{}, nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
		}
	} else {
		b.SideToMove = White
		warnings = append(warnings, ErrMissingSideToMove)
	}

	// 3. Castling rights
	if len(fields) > 2 && fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.Castling |= WhiteKingSide
			case 'Q':
				b.Castling |= WhiteQueenSide
			case 'k':
				b.Castling |= BlackKingSide
			case 'q':
				b.Castling |= BlackQueenSide
			default:
				return Board{}, nil, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
		}
	}

	// 4. En passant target square
	if len(fields) > 3 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Board{}, nil, fmt.Errorf("%w: en passant square: %v", ErrInvalidFEN, err)
		}
		b.EnPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Board{}, nil, fmt.Errorf("%w: halfmove clock %q is not a number", ErrInvalidFEN, fields[4])
		}
		b.HalfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 0 {
			return Board{}, nil, fmt.Errorf("%w: fullmove number %q is not a number", ErrInvalidFEN, fields[5])
		}
		b.FullmoveNumber = n
	}

	return b, warnings, nil
}

// FEN produces the six-field FEN string of the board.
func (b Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))
	return sb.String()
}
