package bench

import (
	"testing"

	"refute/board"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func mustParse(b *testing.B, fen string) board.Board {
	b.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return pos
}

func benchPseudoLegal(b *testing.B, fen string) {
	pos := mustParse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.PseudoLegalMoves()
	}
}

func BenchmarkPseudoLegal_Initial(b *testing.B)  { benchPseudoLegal(b, board.StartFEN) }
func BenchmarkPseudoLegal_Kiwipete(b *testing.B) { benchPseudoLegal(b, kiwipete) }
func BenchmarkPseudoLegal_Pos6(b *testing.B)     { benchPseudoLegal(b, pos6) }

func benchLegal(b *testing.B, fen string) {
	pos := mustParse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalMoves()
	}
}

func BenchmarkLegal_Initial(b *testing.B)  { benchLegal(b, board.StartFEN) }
func BenchmarkLegal_Kiwipete(b *testing.B) { benchLegal(b, kiwipete) }
func BenchmarkLegal_EP(b *testing.B)       { benchLegal(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2") }

func BenchmarkApplyMove_AllMoves_Initial(b *testing.B) {
	pos := mustParse(b, board.StartFEN)
	moves := pos.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			_ = pos.ApplyMove(m)
		}
	}
}

func BenchmarkFEN_RoundTrip(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pos := mustParse(b, kiwipete)
		_ = pos.FEN()
	}
}
