package board

// castleRook maps a king's castling destination to the rook's origin and destination.
var castleRook = map[Square][2]Square{
	G1: {H1, F1},
	C1: {A1, D1},
	G8: {H8, F8},
	C8: {A8, D8},
}

// rookRight maps a rook home square to the castling right it guards.
var rookRight = map[Square]CastlingRights{
	H1: WhiteKingSide,
	A1: WhiteQueenSide,
	H8: BlackKingSide,
	A8: BlackQueenSide,
}

func kingHome(c Color) Square {
	if c == White {
		return E1
	}
	return E8
}

func kingRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}

// ApplyMove plays m and returns the resulting position. The receiver is left
// untouched. The null move, or a move from an empty square, returns the board
// unchanged.
func (b Board) ApplyMove(m Move) Board {
	if m.IsNull() {
		return b
	}
	moving := b.squares[m.From]
	if moving.IsEmpty() {
		return b
	}
	us := moving.Color()
	captured := b.squares[m.To]
	isPawn := moving.Kind() == Pawn

	next := b

	// Relocate the piece and clear its origin.
	next.squares[m.To] = moving
	next.squares[m.From] = Empty

	// Castling rook relocation and castling rights.
	if moving.Kind() == King {
		if m.From == kingHome(us) {
			if rook, ok := castleRook[m.To]; ok && m.To.Rank() == m.From.Rank() {
				next.squares[rook[1]] = next.squares[rook[0]]
				next.squares[rook[0]] = Empty
			}
		}
		next.Castling &^= kingRights(us)
	}
	if moving.Kind() == Rook {
		if right, ok := rookRight[m.From]; ok {
			next.Castling &^= right
		}
	}
	// A rook taken on its home square loses its right as well.
	if captured.Kind() == Rook {
		if right, ok := rookRight[m.To]; ok {
			next.Castling &^= right
		}
	}

	if m.Promotion != NoKind {
		next.squares[m.To] = NewPiece(us, m.Promotion)
	}

	// En passant capture removes the pawn that passed the target square.
	isEnPassant := isPawn && b.EnPassant != NoSquare && m.To == b.EnPassant
	if isEnPassant {
		switch m.To.Rank() {
		case 2:
			next.squares[NewSquare(m.To.File(), 3)] = Empty
		case 5:
			next.squares[NewSquare(m.To.File(), 4)] = Empty
		}
	}

	next.SideToMove = us.Other()

	next.EnPassant = NoSquare
	if isPawn {
		from, to := m.From.Rank(), m.To.Rank()
		if (us == White && from == 1 && to == 3) || (us == Black && from == 6 && to == 4) {
			next.EnPassant = NewSquare(m.From.File(), (from+to)/2)
		}
	}

	if isPawn || !captured.IsEmpty() || isEnPassant {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if next.SideToMove == White {
		next.FullmoveNumber++
	}
	return next
}
