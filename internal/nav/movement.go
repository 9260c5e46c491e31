package nav

import "math"

// MovementRules encodes which neighbor transitions are legal and what one
// step costs. The same rules are shared by the search engine and by direct
// neighbor queries so the two can never disagree.
type MovementRules struct {
	AllowDiagonal        bool
	PreventCornerCutting bool
	DiagonalCost         float64
}

// PointAndClickMovement is the default model: 8-way movement, √2 diagonals,
// no clipping through wall corners.
func PointAndClickMovement() MovementRules {
	return MovementRules{AllowDiagonal: true, PreventCornerCutting: true, DiagonalCost: math.Sqrt2}
}

// GridStrategyMovement is 4-way movement at uniform cost.
func GridStrategyMovement() MovementRules {
	return MovementRules{AllowDiagonal: false, PreventCornerCutting: true, DiagonalCost: math.Sqrt2}
}

// OpenFieldMovement allows diagonals to squeeze past corners, for maps where
// agents have no physical width.
func OpenFieldMovement() MovementRules {
	return MovementRules{AllowDiagonal: true, PreventCornerCutting: false, DiagonalCost: math.Sqrt2}
}

// normalized returns the rules with a usable diagonal cost. A zero-value
// MovementRules would otherwise make diagonal steps free.
func (r MovementRules) normalized() MovementRules {
	if r.DiagonalCost <= 0 {
		r.DiagonalCost = math.Sqrt2
	}
	return r
}

// MoveCost returns the cost of one step between adjacent cells: 1 for an
// orthogonal step, DiagonalCost for a diagonal one.
func (r MovementRules) MoveCost(fromX, fromY, toX, toY int) float64 {
	if fromX != toX && fromY != toY {
		return r.DiagonalCost
	}
	return 1.0
}

// ValidNeighbors returns the legal destination cells one step from (x, y).
// With PreventCornerCutting on, a diagonal step additionally requires both
// flanking orthogonal cells to be walkable.
func (r MovementRules) ValidNeighbors(g *Grid, x, y int) [][2]int {
	if r.PreventCornerCutting {
		return g.Neighbors(x, y, r.AllowDiagonal)
	}
	dirs := gridDirs[:4]
	if r.AllowDiagonal {
		dirs = gridDirs[:]
	}
	out := make([][2]int, 0, len(dirs))
	for _, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		if g.IsWalkable(nx, ny) {
			out = append(out, [2]int{nx, ny})
		}
	}
	return out
}
