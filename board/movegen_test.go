package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftKnownCounts(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial d1", StartFEN, 1, 20},
		{"initial d2", StartFEN, 2, 400},
		{"initial d3", StartFEN, 3, 8902},
		{"kiwipete d1", kiwipete, 1, 48},
		{"kiwipete d2", kiwipete, 2, 2039},
		{"position3 d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"position4 d2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
		{"position5 d2", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.fen)
			if got := Perft(b, tt.depth); got != tt.want {
				t.Fatalf("perft(%d): got %d want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// The refutation filter must agree with an attack-table generator on which
// moves are legal.
func TestPerftMatchesDragontooth(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipete,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		oracle := dragontoothmg.ParseFen(fen)
		if got, want := Perft(b, 2), dragontoothPerft(&oracle, 2); got != want {
			t.Errorf("perft(2) of %q: got %d, dragontoothmg %d", fen, got, want)
		}
	}
}

func TestLegalMovesRefutesPinnedPiece(t *testing.T) {
	// The e2 bishop is pinned by the e8 rook.
	b := mustParse(t, "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1")
	for _, m := range b.LegalMoves() {
		if m.From == NewSquare(4, 1) {
			t.Fatalf("pinned bishop move %s was not refuted", m)
		}
	}
}

func TestLegalMovesCastlingThroughAttack(t *testing.T) {
	// The f8 rook covers f1, so king side castling is refuted; queen side is fine.
	b := mustParse(t, "5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var kingSide, queenSide bool
	for _, m := range b.LegalMoves() {
		switch m.String() {
		case "e1g1":
			kingSide = true
		case "e1c1":
			queenSide = true
		}
	}
	if kingSide {
		t.Fatalf("castling through f1 was not refuted")
	}
	if !queenSide {
		t.Fatalf("queen side castling missing")
	}

	// In check: no castling at all.
	b = mustParse(t, "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	for _, m := range b.LegalMoves() {
		if b.IsCastling(m) {
			t.Fatalf("castled out of check with %s", m)
		}
	}
}

func TestInCheck(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{StartFEN, false},
		{"4k3/8/8/8/8/8/8/4K2r w - - 0 1", true},
		{"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", false},
		{"4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", true},
	}
	for _, tt := range tests {
		b := mustParse(t, tt.fen)
		if got := b.InCheck(); got != tt.want {
			t.Errorf("InCheck(%q) = %v want %v", tt.fen, got, tt.want)
		}
	}
}

func TestPseudoLegalPawnEdges(t *testing.T) {
	// An a-file pawn must not wrap to capture on the h-file.
	b := mustParse(t, "4k3/8/8/8/8/7p/P7/4K3 w - - 0 1")
	for _, m := range b.PseudoLegalMoves() {
		if m.From == NewSquare(0, 1) && m.To.File() == 7 {
			t.Fatalf("pawn wrapped around the board: %s", m)
		}
	}
}

func TestFindLegal(t *testing.T) {
	b := StartPosition()
	if _, ok := b.FindLegal(mustMove(t, "e2e4")); !ok {
		t.Fatalf("e2e4 should be legal")
	}
	if _, ok := b.FindLegal(mustMove(t, "e2e5")); ok {
		t.Fatalf("e2e5 should not be legal")
	}
}
