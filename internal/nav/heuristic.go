package nav

import "math"

// HeuristicMethod selects the distance metric used to estimate remaining
// cost during a search. Estimates must never overestimate the true cost
// under the configured movement model, or A* loses its optimality guarantee.
type HeuristicMethod int

const (
	// HeuristicManhattan is |dx|+|dy|. Admissible only when diagonal
	// movement is disabled.
	HeuristicManhattan HeuristicMethod = iota
	// HeuristicEuclidean is the straight-line distance. Always admissible
	// but rarely tight, so it tends to expand more nodes.
	HeuristicEuclidean
	// HeuristicOctile is the tightest admissible metric for 8-way movement
	// with a √2 diagonal cost. Default for point-and-click navigation.
	HeuristicOctile
)

func (m HeuristicMethod) String() string {
	switch m {
	case HeuristicManhattan:
		return "manhattan"
	case HeuristicEuclidean:
		return "euclidean"
	case HeuristicOctile:
		return "octile"
	default:
		return "unknown"
	}
}

// Estimate returns the estimated cost between cells (ax, ay) and (bx, by).
func (m HeuristicMethod) Estimate(ax, ay, bx, by int) float64 {
	dx := math.Abs(float64(ax - bx))
	dy := math.Abs(float64(ay - by))
	switch m {
	case HeuristicManhattan:
		return dx + dy
	case HeuristicEuclidean:
		return math.Sqrt(dx*dx + dy*dy)
	default:
		// Octile: min(dx,dy)·√2 + (max−min), folded into one expression.
		return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
	}
}

// AdmissibleFor reports whether the metric never overestimates remaining
// cost under the given movement model. Manhattan overestimates as soon as
// diagonal steps are legal.
func (m HeuristicMethod) AdmissibleFor(allowDiagonal bool) bool {
	return !(m == HeuristicManhattan && allowDiagonal)
}
