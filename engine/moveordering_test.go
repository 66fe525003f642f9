package engine

import (
	"testing"

	"refute/board"
)

func TestOrderMovesCapturesFirst(t *testing.T) {
	// The e4 pawn can take the d5 queen or the f5 knight; the queen comes first.
	b := mustBoard(t, "4k3/8/8/3q1n2/4P3/8/8/4K3 w - - 0 1")
	moves := b.LegalMoves()
	orderMoves(&b, moves, board.NullMove)
	if moves[0].String() != "e4d5" || moves[1].String() != "e4f5" {
		t.Fatalf("unexpected order: %v", moves[:2])
	}
}

func TestOrderMovesPVFirst(t *testing.T) {
	b := board.StartPosition()
	moves := b.LegalMoves()
	pv := mustMove(t, "g1f3")
	orderMoves(&b, moves, pv)
	if moves[0] != pv {
		t.Fatalf("pv move not first: %v", moves[0])
	}
	if len(moves) != 20 {
		t.Fatalf("ordering lost moves: %d", len(moves))
	}
}

func TestOrderMovesPVBeatsCapturePromotion(t *testing.T) {
	b := mustBoard(t, "r3k3/1P6/8/8/8/8/8/4K2R w K - 0 1")
	moves := b.LegalMoves()
	pv := mustMove(t, "e1g1")
	orderMoves(&b, moves, pv)
	if moves[0] != pv {
		t.Fatalf("pv move not first: %v", moves[0])
	}
	if moves[1].String() != "b7a8q" {
		t.Fatalf("capture promotion should follow the pv move, got %v", moves[1])
	}
}

func TestScoreMoveEnPassantIsCapture(t *testing.T) {
	b := mustBoard(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	ep := mustMove(t, "e5d6")
	if got := scoreMove(&b, ep, board.NullMove); got != captureOffset+mvvLva[board.Pawn][board.Pawn] {
		t.Fatalf("en passant score %d", got)
	}
	quiet := mustMove(t, "e5e6")
	if got := scoreMove(&b, quiet, board.NullMove); got != 0 {
		t.Fatalf("quiet move score %d", got)
	}
}
