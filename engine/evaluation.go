package engine

import (
	"refute/board"
)

// Material weights indexed by board.PieceKind. The king carries no material.
var pieceValue = [7]int32{
	board.NoKind: 0,
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   0,
}

// Pawn advancement bonus: file weight times the weight of the ranks advanced
// from the pawn's home side. Central wing files (b, c, f, g) weigh most.
var pawnFileWeight = [8]int32{1, 3, 3, 2, 2, 3, 3, 1}
var pawnAdvanceWeight = [8]int32{0, 0, 1, 3, 6, 12, 24, 0}

// Evaluator scores positions statically in centipawns, White positive.
type Evaluator struct {
	// PawnAdvancement enables the positional pawn term. It applies only to
	// pawns of the side not on move.
	PawnAdvancement bool
}

// Evaluate returns the static score of b.
func (e Evaluator) Evaluate(b *board.Board) int32 {
	var score int32
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		v := pieceValue[p.Kind()]
		if e.PawnAdvancement && p.Kind() == board.Pawn && p.Color() != b.SideToMove {
			v += pawnAdvancement(sq, p.Color())
		}
		if p.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

func pawnAdvancement(sq board.Square, c board.Color) int32 {
	advanced := sq.Rank()
	if c == board.Black {
		advanced = 7 - advanced
	}
	return pawnFileWeight[sq.File()] * pawnAdvanceWeight[advanced]
}

// Material returns the material balance alone, White positive.
func Material(b *board.Board) int32 {
	return Evaluator{}.Evaluate(b)
}
