package engine

import (
	"context"
	"time"

	"refute/board"
)

const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0

	// Deadline and cancellation are polled once per this many nodes, and
	// before every root move.
	pollInterval = 1024
)

// Result is the outcome of one search.
type Result struct {
	Best   board.Move
	Ponder board.Move
	Score  int32
	Depth  int
	Nodes  uint64
}

// HasPonder reports whether a ponder move accompanies the best move.
func (r Result) HasPonder() bool { return !r.Ponder.IsNull() }

type searcher struct {
	ctx     context.Context
	eval    Evaluator
	budget  budget
	start   time.Time
	nodes   uint64
	aborted bool
}

func (s *searcher) poll() bool {
	if s.aborted {
		return true
	}
	if s.ctx.Err() != nil || s.budget.exhausted(s.nodes, time.Now()) {
		s.aborted = true
	}
	return s.aborted
}

// Search runs an iterative depth-bounded search on b. onInfo, if non-nil, is
// called after every completed iteration. The boolean result is false only
// when the side to move has no legal move.
//
// A best move is committed before the first cancellation poll, so a
// cancelled search still returns a move whenever one exists.
func Search(ctx context.Context, b board.Board, p Params, opts Options, onInfo func(Info)) (Result, bool) {
	s := &searcher{
		ctx:    ctx,
		eval:   opts.evaluator(),
		budget: newBudget(p, opts, time.Now()),
		start:  time.Now(),
	}
	return s.rootsearch(&b, p.SearchMoves, onInfo)
}

func (s *searcher) rootsearch(b *board.Board, restrict []board.Move, onInfo func(Info)) (Result, bool) {
	moves := restrictMoves(b.LegalMoves(), restrict)
	if len(moves) == 0 {
		return Result{}, false
	}

	result := Result{Best: moves[0]}
	if len(moves) == 1 {
		return result, true
	}
	orderMoves(b, moves, board.NullMove)
	result.Best = moves[0]

	var pvLine PVLine
	for depth := 1; depth <= s.budget.maxDepth; depth++ {
		if s.poll() {
			break
		}
		score := s.searchRoot(b, moves, depth, &pvLine)
		if s.aborted {
			break
		}

		result.Best = pvLine.GetPVMove()
		result.Ponder = board.NullMove
		if len(pvLine.Moves) > 1 {
			result.Ponder = pvLine.Moves[1]
		}
		result.Score = score
		result.Depth = depth
		result.Nodes = s.nodes

		if onInfo != nil {
			onInfo(Info{
				Depth:   depth,
				Score:   getMateOrCPScore(score, depth, b.SideToMove),
				Nodes:   s.nodes,
				Elapsed: time.Since(s.start),
				PV:      pvLine.Clone(),
			})
		}
		if IsMateScore(score) {
			break
		}
		orderMoves(b, moves, result.Best)
	}
	result.Nodes = s.nodes
	return result, true
}

func (s *searcher) searchRoot(b *board.Board, moves []board.Move, depth int, pvLine *PVLine) int32 {
	alpha, beta := -MaxScore, MaxScore
	maximizing := b.SideToMove == board.White
	best := -MaxScore
	if !maximizing {
		best = MaxScore
	}
	var childPVLine PVLine
	for _, m := range moves {
		if s.poll() {
			return 0
		}
		next := b.ApplyMove(m)
		childPVLine.Clear()
		score := s.alphabeta(&next, alpha, beta, depth-1, &childPVLine)
		if s.aborted {
			return 0
		}
		if maximizing {
			if score > best {
				best = score
				pvLine.Update(m, childPVLine)
			}
			alpha = Max(alpha, score)
		} else {
			if score < best {
				best = score
				pvLine.Update(m, childPVLine)
			}
			beta = Min(beta, score)
		}
	}
	return best
}

// alphabeta returns the White-positive minimax value of b searched to depth
// plies. White maximizes and Black minimizes. Terminal positions score
// ±(Checkmate+depth) for mate so that shallower mates are preferred.
func (s *searcher) alphabeta(b *board.Board, alpha, beta int32, depth int, pvLine *PVLine) int32 {
	s.nodes++
	if s.nodes%pollInterval == 0 && s.poll() {
		return 0
	}
	if s.budget.nodeLimit > 0 && s.nodes >= s.budget.nodeLimit {
		s.aborted = true
		return 0
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		pvLine.Clear()
		return terminalScore(b, depth)
	}
	if depth <= 0 {
		pvLine.Clear()
		return s.eval.Evaluate(b)
	}

	orderMoves(b, moves, board.NullMove)

	var childPVLine PVLine
	if b.SideToMove == board.White {
		best := -MaxScore
		for _, m := range moves {
			next := b.ApplyMove(m)
			childPVLine.Clear()
			score := s.alphabeta(&next, alpha, beta, depth-1, &childPVLine)
			if s.aborted {
				return 0
			}
			if score > best {
				best = score
				pvLine.Update(m, childPVLine)
			}
			alpha = Max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := MaxScore
	for _, m := range moves {
		next := b.ApplyMove(m)
		childPVLine.Clear()
		score := s.alphabeta(&next, alpha, beta, depth-1, &childPVLine)
		if s.aborted {
			return 0
		}
		if score < best {
			best = score
			pvLine.Update(m, childPVLine)
		}
		beta = Min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

// terminalScore scores a position without legal moves: mate is a loss for
// the side to move, anything else is stalemate.
func terminalScore(b *board.Board, depth int) int32 {
	if !b.InCheck() {
		return DrawScore
	}
	score := Checkmate + int32(depth)
	if b.SideToMove == board.White {
		return -score
	}
	return score
}

// restrictMoves keeps the legal moves named in restrict. An empty or fully
// illegal restriction leaves the list untouched.
func restrictMoves(legal, restrict []board.Move) []board.Move {
	if len(restrict) == 0 {
		return legal
	}
	kept := make([]board.Move, 0, len(restrict))
	for _, m := range legal {
		for _, r := range restrict {
			if m == r {
				kept = append(kept, m)
				break
			}
		}
	}
	if len(kept) == 0 {
		return legal
	}
	return kept
}
