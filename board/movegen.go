package board

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves generates the moves of the side to move that obey piece
// movement rules, without checking whether the mover's king is left capturable.
func (b *Board) PseudoLegalMoves() []Move {
	return b.generateInto(make([]Move, 0, 64), b.SideToMove)
}

// generateInto appends the pseudo-legal moves of side us to dst. En passant
// and castling are only produced when us is the side to move, because the
// board's en passant target and castling context belong to that side.
func (b *Board) generateInto(dst []Move, us Color) []Move {
	onMove := us == b.SideToMove
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.IsEmpty() || p.Color() != us {
			continue
		}
		switch p.Kind() {
		case Pawn:
			dst = b.pawnMoves(dst, sq, us, onMove)
		case Knight:
			dst = b.leaperMoves(dst, sq, us, &knightTargets)
		case Bishop:
			dst = b.sliderMoves(dst, sq, us, &bishopRays)
		case Rook:
			dst = b.sliderMoves(dst, sq, us, &rookRays)
		case Queen:
			dst = b.sliderMoves(dst, sq, us, &bishopRays)
			dst = b.sliderMoves(dst, sq, us, &rookRays)
		case King:
			dst = b.leaperMoves(dst, sq, us, &kingTargets)
			if onMove {
				dst = b.castlingMoves(dst, sq, us)
			}
		}
	}
	return dst
}

func appendPawnMove(dst []Move, from, to Square, promoRank int) []Move {
	if to.Rank() == promoRank {
		for _, k := range promotionKinds {
			dst = append(dst, Move{From: from, To: to, Promotion: k})
		}
		return dst
	}
	return append(dst, Move{From: from, To: to})
}

func (b *Board) pawnMoves(dst []Move, from Square, us Color, onMove bool) []Move {
	dir, startRank, promoRank := 8, 1, 7
	if us == Black {
		dir, startRank, promoRank = -8, 6, 0
	}

	// Advances
	one := from + Square(dir)
	if one >= 0 && one < 64 && b.squares[one].IsEmpty() {
		dst = appendPawnMove(dst, from, one, promoRank)
		if from.Rank() == startRank {
			two := one + Square(dir)
			if b.squares[two].IsEmpty() {
				dst = append(dst, Move{From: from, To: two})
			}
		}
	}

	// Diagonal captures, excluding wrap-around from the edge files
	for _, df := range [2]int{-1, 1} {
		f := from.File() + df
		if f < 0 || f > 7 {
			continue
		}
		r := from.Rank() + dir/8
		if r < 0 || r > 7 {
			continue
		}
		to := NewSquare(f, r)
		target := b.squares[to]
		if !target.IsEmpty() && target.Color() != us {
			dst = appendPawnMove(dst, from, to, promoRank)
		} else if onMove && target.IsEmpty() && to == b.EnPassant {
			dst = append(dst, Move{From: from, To: to})
		}
	}
	return dst
}

func (b *Board) leaperMoves(dst []Move, from Square, us Color, table *[64][]Square) []Move {
	for _, to := range table[from] {
		target := b.squares[to]
		if target.IsEmpty() || target.Color() != us {
			dst = append(dst, Move{From: from, To: to})
		}
	}
	return dst
}

func (b *Board) sliderMoves(dst []Move, from Square, us Color, table *[64][][]Square) []Move {
	for _, ray := range table[from] {
		for _, to := range ray {
			target := b.squares[to]
			if target.IsEmpty() {
				dst = append(dst, Move{From: from, To: to})
				continue
			}
			if target.Color() != us {
				dst = append(dst, Move{From: from, To: to})
			}
			break
		}
	}
	return dst
}

// castlingMoves emits king moves to the castling destinations when the right is
// held, the rook stands on its home square and the squares between are empty.
// Whether the king passes through an attacked square is decided by the legality
// filter.
func (b *Board) castlingMoves(dst []Move, from Square, us Color) []Move {
	if from != kingHome(us) {
		return dst
	}
	type castle struct {
		right   CastlingRights
		rook    Square
		to      Square
		between []Square
	}
	var options [2]castle
	if us == White {
		options = [2]castle{
			{WhiteKingSide, H1, G1, []Square{F1, G1}},
			{WhiteQueenSide, A1, C1, []Square{D1, C1, B1}},
		}
	} else {
		options = [2]castle{
			{BlackKingSide, H8, G8, []Square{F8, G8}},
			{BlackQueenSide, A8, C8, []Square{D8, C8, B8}},
		}
	}
	for _, c := range options {
		if !b.Castling.Has(c.right) || !b.squares[c.rook].Is(us, Rook) {
			continue
		}
		empty := true
		for _, sq := range c.between {
			if !b.squares[sq].IsEmpty() {
				empty = false
				break
			}
		}
		if empty {
			dst = append(dst, Move{From: from, To: c.to})
		}
	}
	return dst
}

// IsCastling reports whether m is a king move from its home square to a
// castling destination on this board.
func (b *Board) IsCastling(m Move) bool {
	p := b.squares[m.From]
	if p.Kind() != King || m.From != kingHome(p.Color()) {
		return false
	}
	d := int(m.To) - int(m.From)
	return d == 2 || d == -2
}

// kingCapturable reports whether any pseudo-legal move of the opponent of c
// lands on c's king.
func (b *Board) kingCapturable(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	for _, reply := range b.generateInto(make([]Move, 0, 64), c.Other()) {
		if reply.To == ksq {
			return true
		}
	}
	return false
}

// InCheck reports whether the side to move's king could be captured if the
// opponent were on move.
func (b *Board) InCheck() bool {
	return b.kingCapturable(b.SideToMove)
}

// Refuted reports whether candidate m leaves the mover's king capturable by
// some opponent reply on the successor position. A castling move is also
// refuted when the king starts in check or crosses a square where it would be
// captured.
func (b *Board) Refuted(m Move) bool {
	us := b.SideToMove
	if b.IsCastling(m) {
		if b.InCheck() {
			return true
		}
		transit := Square((int(m.From) + int(m.To)) / 2)
		passing := b.ApplyMove(Move{From: m.From, To: transit})
		if passing.kingCapturable(us) {
			return true
		}
	}
	next := b.ApplyMove(m)
	return next.kingCapturable(us)
}

// LegalMoves returns the pseudo-legal moves that survive simulated refutation.
func (b *Board) LegalMoves() []Move {
	pseudo := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !b.Refuted(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// FindLegal returns the legal move matching m's squares and promotion.
func (b *Board) FindLegal(m Move) (Move, bool) {
	for _, lm := range b.LegalMoves() {
		if lm == m {
			return lm, true
		}
	}
	return NullMove, false
}
