package engine

import (
	"testing"

	"refute/board"
)

func TestEvaluateMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int32
	}{
		{"initial", board.StartFEN, 0},
		{"white missing queen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1", -900},
		{"black missing knight", "r1bqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", 320},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
	}
	e := Evaluator{PawnAdvancement: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			if got := e.Evaluate(&b); got != tt.want {
				t.Fatalf("Evaluate: got %d want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluatePawnAdvancementOnlyForSideNotToMove(t *testing.T) {
	e := Evaluator{PawnAdvancement: true}

	// White pawn on e5: file weight 2, four ranks advanced weight 6.
	blackToMove := mustBoard(t, "4k3/8/8/4P3/8/8/8/4K3 b - - 0 1")
	if got := e.Evaluate(&blackToMove); got != 112 {
		t.Fatalf("white pawn with black to move: got %d want 112", got)
	}
	whiteToMove := mustBoard(t, "4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")
	if got := e.Evaluate(&whiteToMove); got != 100 {
		t.Fatalf("white pawn with white to move: got %d want 100", got)
	}

	// Black pawn on b3 has advanced five ranks: 3 * 12.
	black := mustBoard(t, "4k3/8/8/8/8/1p6/8/4K3 w - - 0 1")
	if got := e.Evaluate(&black); got != -136 {
		t.Fatalf("black pawn with white to move: got %d want -136", got)
	}

	off := Evaluator{}
	if got := off.Evaluate(&blackToMove); got != 100 {
		t.Fatalf("disabled term still applied: %d", got)
	}
}

func TestMaterialIgnoresPosition(t *testing.T) {
	b := mustBoard(t, "4k3/1P6/8/8/8/8/8/4K3 b - - 0 1")
	if got := Material(&b); got != 100 {
		t.Fatalf("Material: got %d want 100", got)
	}
}
