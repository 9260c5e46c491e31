package nav

import "math"

// DefaultLookahead is the greedy scan window of Optimize, in path points.
// Bounding the window keeps the optimizer O(n·window) on long paths instead
// of O(n²).
const DefaultLookahead = 10

// Optimizer collapses raw cell-by-cell paths into sparse waypoint lists
// using line-of-sight pruning, plus secondary transforms (smoothing,
// densification, simplification) applied independently on request. It only
// reads the grid.
type Optimizer struct {
	grid *Grid

	// Lookahead is how many points ahead of the current anchor Optimize
	// scans for a visible shortcut.
	Lookahead int

	// MidpointThreshold is the world-space distance above which a path
	// reduced to a single start-to-goal jump gets the raw path's middle
	// point re-inserted, avoiding an unnaturally long straight snap.
	MidpointThreshold float64
}

// NewOptimizer creates an optimizer with the default lookahead window and a
// midpoint threshold of four cells.
func NewOptimizer(g *Grid) *Optimizer {
	return &Optimizer{
		grid:              g,
		Lookahead:         DefaultLookahead,
		MidpointThreshold: float64(4 * g.cellSize),
	}
}

// HasLineOfSight reports whether the straight segment between two world
// points crosses only walkable cells. The segment is rasterized onto the
// grid with Bresenham's line algorithm; the first blocked cell fails it.
func (o *Optimizer) HasLineOfSight(ax, ay, bx, by float64) bool {
	x0, y0 := o.grid.WorldToGrid(ax, ay)
	x1, y1 := o.grid.WorldToGrid(bx, by)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if !o.grid.IsWalkable(x, y) {
			return false
		}
		if x == x1 && y == y1 {
			return true
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Optimize reduces a raw cell-adjacent path to waypoints: from the current
// anchor it takes the furthest point within the lookahead window still in
// line of sight, and repeats. The final output point always equals the
// final input point. Paths of 3 or fewer points are returned unchanged.
//
// The bounded lookahead is a deliberate trade-off: the result is not a
// globally minimal waypoint set, and consumers depend on its waypoint
// density, so do not widen the window to "fix" long paths.
func (o *Optimizer) Optimize(path [][2]float64) [][2]float64 {
	out := make([][2]float64, len(path))
	copy(out, path)
	if len(path) <= 3 {
		return out
	}

	window := o.Lookahead
	if window < 1 {
		window = DefaultLookahead
	}

	out = out[:1]
	cur := 0
	for cur < len(path)-1 {
		far := cur + 1
		limit := min(cur+window, len(path)-1)
		for i := limit; i > cur+1; i-- {
			if o.HasLineOfSight(path[cur][0], path[cur][1], path[i][0], path[i][1]) {
				far = i
				break
			}
		}
		out = append(out, path[far])
		cur = far
	}

	// A single start-to-goal jump across a long route looks unnatural when
	// the window happens to permit it; put the raw midpoint back, provided
	// it stays visible from both ends.
	if len(out) == 2 && pointDist(out[0], out[1]) > o.MidpointThreshold {
		mid := path[len(path)/2]
		if o.HasLineOfSight(out[0][0], out[0][1], mid[0], mid[1]) &&
			o.HasLineOfSight(mid[0], mid[1], out[1][0], out[1][1]) {
			out = [][2]float64{out[0], mid, out[1]}
		}
	}
	return out
}

// Smooth applies one low-pass averaging pass over interior points. A point
// is left in place when smoothing would move it into an unwalkable cell.
func (o *Optimizer) Smooth(path [][2]float64) [][2]float64 {
	out := make([][2]float64, len(path))
	copy(out, path)
	if len(path) < 3 {
		return out
	}
	for i := 1; i < len(path)-1; i++ {
		sx := (path[i-1][0] + 2*path[i][0] + path[i+1][0]) / 4
		sy := (path[i-1][1] + 2*path[i][1] + path[i+1][1]) / 4
		cx, cy := o.grid.WorldToGrid(sx, sy)
		if !o.grid.IsWalkable(cx, cy) {
			continue
		}
		out[i] = [2]float64{sx, sy}
	}
	return out
}

// Densify inserts evenly spaced intermediate points so that no segment is
// longer than maxSegment, for animation and locomotion consumers.
func (o *Optimizer) Densify(path [][2]float64, maxSegment float64) [][2]float64 {
	if len(path) < 2 || maxSegment <= 0 {
		out := make([][2]float64, len(path))
		copy(out, path)
		return out
	}
	out := [][2]float64{path[0]}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dist := pointDist(a, b)
		if dist > maxSegment {
			steps := int(math.Ceil(dist / maxSegment))
			for s := 1; s < steps; s++ {
				t := float64(s) / float64(steps)
				out = append(out, [2]float64{
					a[0] + (b[0]-a[0])*t,
					a[1] + (b[1]-a[1])*t,
				})
			}
		}
		out = append(out, b)
	}
	return out
}

// Simplify drops points closer than minDist to the previously kept point.
// The first and last points are always kept.
func (o *Optimizer) Simplify(path [][2]float64, minDist float64) [][2]float64 {
	if len(path) <= 2 || minDist <= 0 {
		out := make([][2]float64, len(path))
		copy(out, path)
		return out
	}
	out := [][2]float64{path[0]}
	for i := 1; i < len(path)-1; i++ {
		if pointDist(out[len(out)-1], path[i]) >= minDist {
			out = append(out, path[i])
		}
	}
	out = append(out, path[len(path)-1])
	return out
}

// IsPathValid reports whether every point sits on a walkable cell and every
// consecutive pair has line of sight. Cheap way to re-validate a stored
// path after the grid changed, without a new search.
func (o *Optimizer) IsPathValid(path [][2]float64) bool {
	if len(path) == 0 {
		return false
	}
	for _, pt := range path {
		cx, cy := o.grid.WorldToGrid(pt[0], pt[1])
		if !o.grid.IsWalkable(cx, cy) {
			return false
		}
	}
	for i := 1; i < len(path); i++ {
		if !o.HasLineOfSight(path[i-1][0], path[i-1][1], path[i][0], path[i][1]) {
			return false
		}
	}
	return true
}

func pointDist(a, b [2]float64) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
