package bench

import (
	"context"
	"testing"

	"refute/board"
	"refute/engine"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos := mustParse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D3(b *testing.B) {
	benchPerft(b, board.StartFEN, 3)
}

func BenchmarkPerft_Kiwipete_D2(b *testing.B) {
	benchPerft(b, kiwipete, 2)
}

func benchSearch(b *testing.B, fen string, depth int) {
	pos := mustParse(b, fen)
	opts := engine.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := engine.Search(context.Background(), pos, engine.Params{Depth: depth}, opts, nil); !ok {
			b.Fatalf("no move for %q", fen)
		}
	}
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, board.StartFEN, 3)
}

func BenchmarkSearch_Pos6_D2(b *testing.B) {
	benchSearch(b, pos6, 2)
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	pos := mustParse(b, kiwipete)
	e := engine.Evaluator{PawnAdvancement: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Evaluate(&pos)
	}
}
