package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(b.ApplyMove(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func PerftDivide(b Board, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range b.LegalMoves() {
		div[m] = Perft(b.ApplyMove(m), depth-1)
	}
	return div
}
