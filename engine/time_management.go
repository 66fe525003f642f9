package engine

import (
	"time"
)

// budget is the effort a worker may spend. Depth is the authoritative bound;
// a node cap and a fixed move time are honoured at poll points. Clock fields
// (wtime, btime, winc, binc, movestogo) are accepted but not enforced.
type budget struct {
	maxDepth  int
	nodeLimit uint64
	deadline  time.Time
	infinite  bool
}

func newBudget(p Params, opts Options, now time.Time) budget {
	bd := budget{
		maxDepth:  opts.DefaultDepth,
		nodeLimit: p.Nodes,
		infinite:  p.Infinite,
	}
	if p.Depth > 0 {
		bd.maxDepth = p.Depth
	} else if p.Mate > 0 {
		bd.maxDepth = 2*p.Mate - 1
	} else if p.Infinite {
		bd.maxDepth = opts.MaxDepth
	}
	if p.Depth > 0 && p.Mate > 0 {
		bd.maxDepth = Min(bd.maxDepth, 2*p.Mate-1)
	}
	bd.maxDepth = Clamp(bd.maxDepth, 1, Max(opts.MaxDepth, 1))
	if p.MoveTime > 0 {
		bd.deadline = now.Add(p.MoveTime)
	}
	return bd
}

// exhausted reports whether the node cap or the move time has run out.
func (bd budget) exhausted(nodes uint64, now time.Time) bool {
	if bd.nodeLimit > 0 && nodes >= bd.nodeLimit {
		return true
	}
	if !bd.deadline.IsZero() && !now.Before(bd.deadline) {
		return true
	}
	return false
}
