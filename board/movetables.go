package board

// Movement offsets are expressed as (file, rank) steps so edge wrapping is
// impossible. The tables are built once at package initialization and never
// written afterwards.

type step struct{ df, dr int }

var (
	knightSteps = [8]step{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8]step{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	rookDirs    = [4]step{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs  = [4]step{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

var (
	knightTargets = buildLeaperTable(knightSteps[:])
	kingTargets   = buildLeaperTable(kingSteps[:])
	rookRays      = buildRayTable(rookDirs[:])
	bishopRays    = buildRayTable(bishopDirs[:])
)

func offset(sq Square, s step) (Square, bool) {
	f := sq.File() + s.df
	r := sq.Rank() + s.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// buildLeaperTable lists, per square, the on-board destinations of single steps.
func buildLeaperTable(steps []step) [64][]Square {
	var table [64][]Square
	for sq := Square(0); sq < 64; sq++ {
		for _, s := range steps {
			if to, ok := offset(sq, s); ok {
				table[sq] = append(table[sq], to)
			}
		}
	}
	return table
}

// buildRayTable lists, per square and direction, the squares along the ray
// ordered outward from the origin.
func buildRayTable(dirs []step) [64][][]Square {
	var table [64][][]Square
	for sq := Square(0); sq < 64; sq++ {
		table[sq] = make([][]Square, len(dirs))
		for i, d := range dirs {
			cur := sq
			for {
				next, ok := offset(cur, d)
				if !ok {
					break
				}
				table[sq][i] = append(table[sq][i], next)
				cur = next
			}
		}
	}
	return table
}
