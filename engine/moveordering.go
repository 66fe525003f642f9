package engine

import (
	"sort"

	"refute/board"
)

// Most Valuable Victim - Least Valuable Aggressor, indexed [victim][attacker]
// by board.PieceKind.
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// The PV move goes first, then promotions, then captures by MVV-LVA.
// Quiet moves keep their generation order. pvOffset stays above any
// promotion that also captures.
const (
	pvOffset        uint16 = 60000
	promotionOffset uint16 = 20000
	captureOffset   uint16 = 15000
)

type scoredMove struct {
	move  board.Move
	score uint16
}

// orderMoves sorts moves in place, best candidates first. pvMove may be the
// null move.
func orderMoves(b *board.Board, moves []board.Move, pvMove board.Move) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(b, m, pvMove)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	for i := range scored {
		moves[i] = scored[i].move
	}
}

func scoreMove(b *board.Board, m, pvMove board.Move) uint16 {
	if m == pvMove {
		return pvOffset
	}
	attacker := b.PieceAt(m.From).Kind()
	victim := b.PieceAt(m.To).Kind()
	if attacker == board.Pawn && m.To == b.EnPassant {
		victim = board.Pawn
	}
	var score uint16
	if m.Promotion != board.NoKind {
		score = promotionOffset + uint16(pieceValue[m.Promotion]/10)
	}
	if victim != board.NoKind {
		score += captureOffset + mvvLva[victim][attacker]
	}
	return score
}
