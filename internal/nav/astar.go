package nav

import (
	"container/heap"
	"fmt"
	"math"
	"time"
)

// DefaultNodeBudget caps node expansions per search. It guards against
// runaway searches on pathological or disconnected grids; exceeding it
// aborts the search instead of hanging.
const DefaultNodeBudget = 2048

// sameCellEpsilon is the world-space distance below which two points in the
// same cell are treated as one point.
const sameCellEpsilon = 1e-6

// pathNode is one search vertex. f is never stored: it is always g+h, so
// the two can never diverge.
type pathNode struct {
	cx, cy int
	g, h   float64
	parent *pathNode
	index  int // heap index
}

// openList orders nodes by f = g+h, ties broken by lower h. The tie-break
// favors nodes closer to the goal, which cuts wasted exploration on cost
// plateaus and keeps results deterministic.
type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	fi := ol[i].g + ol[i].h
	fj := ol[j].g + ol[j].h
	if fi != fj {
		return fi < fj
	}
	return ol[i].h < ol[j].h
}
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// Pathfinder runs A* searches over a Grid. It is synchronous: a call runs
// to completion (or aborts at the node budget) before returning, and all
// working state lives on the call stack of that one invocation. One
// Pathfinder must not be shared by concurrent callers; give each worker its
// own, over a Grid nobody is mutating.
type Pathfinder struct {
	grid       *Grid
	rules      MovementRules
	heuristic  HeuristicMethod
	nodeBudget int
	stats      SearchStats
	log        *SearchLog
}

// NewPathfinder creates a pathfinder with point-and-click movement, the
// octile heuristic, and the default node budget.
func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{
		grid:       g,
		rules:      PointAndClickMovement(),
		heuristic:  HeuristicOctile,
		nodeBudget: DefaultNodeBudget,
	}
}

func (p *Pathfinder) Grid() *Grid                { return p.grid }
func (p *Pathfinder) Rules() MovementRules       { return p.rules }
func (p *Pathfinder) Heuristic() HeuristicMethod { return p.heuristic }
func (p *Pathfinder) NodeBudget() int            { return p.nodeBudget }

// SetMovementRules replaces the movement model for subsequent searches.
func (p *Pathfinder) SetMovementRules(r MovementRules) { p.rules = r.normalized() }

// SetHeuristic selects the estimate metric for subsequent searches.
func (p *Pathfinder) SetHeuristic(m HeuristicMethod) { p.heuristic = m }

// SetNodeBudget sets the per-search expansion cap. Values below 1 are
// ignored.
func (p *Pathfinder) SetNodeBudget(n int) {
	if n >= 1 {
		p.nodeBudget = n
	}
}

// SetLog attaches a SearchLog that records one entry per search. nil
// detaches.
func (p *Pathfinder) SetLog(sl *SearchLog) { p.log = sl }

// Stats returns diagnostics for the most recent search.
func (p *Pathfinder) Stats() SearchStats { return p.stats }

// ValidateConfig returns non-fatal configuration warnings, such as a
// heuristic/movement-model mismatch. The search still runs (possibly
// suboptimally) when warnings are present.
func (p *Pathfinder) ValidateConfig() []string {
	var warns []string
	if !p.heuristic.AdmissibleFor(p.rules.AllowDiagonal) {
		warns = append(warns, fmt.Sprintf(
			"%s heuristic is inadmissible with diagonal movement enabled; paths may be suboptimal", p.heuristic))
	}
	if p.rules.AllowDiagonal && p.rules.DiagonalCost > 0 && p.rules.DiagonalCost < 1 {
		warns = append(warns, fmt.Sprintf(
			"diagonal cost %.3f is below the orthogonal cost; diagonal detours will dominate", p.rules.DiagonalCost))
	}
	return warns
}

// FindPath returns an ordered sequence of world-space points from start to
// goal, or nil when no route exists, the goal cell is blocked, the inputs
// are invalid, or the node budget runs out. The start cell is deliberately
// not required to be walkable: an agent standing on an obstacle boundary
// must still be able to path away from it.
func (p *Pathfinder) FindPath(sx, sy, gx, gy float64) [][2]float64 {
	return p.search(sx, sy, gx, gy, 0, false)
}

// FindPartialPath is FindPath, except it returns a route to the closest
// approach to the goal when the goal itself is blocked or unreachable, and
// it stops expanding nodes whose accumulated cost exceeds maxDistance
// (measured in cell steps). It returns nil only for invalid input.
func (p *Pathfinder) FindPartialPath(sx, sy, gx, gy, maxDistance float64) [][2]float64 {
	return p.search(sx, sy, gx, gy, maxDistance, true)
}

// PathExists reports whether a full route exists between the two points.
func (p *Pathfinder) PathExists(sx, sy, gx, gy float64) bool {
	return p.FindPath(sx, sy, gx, gy) != nil
}

// EstimateCost returns the heuristic value between the two points' cells
// without searching: a fast, non-authoritative distance for prioritization
// and sorting. Returns -1 for invalid input.
func (p *Pathfinder) EstimateCost(sx, sy, gx, gy float64) float64 {
	if !finiteCoords(sx, sy, gx, gy) {
		return -1
	}
	scx, scy := p.grid.WorldToGrid(sx, sy)
	gcx, gcy := p.grid.WorldToGrid(gx, gy)
	if !p.grid.InBounds(scx, scy) || !p.grid.InBounds(gcx, gcy) {
		return -1
	}
	return p.heuristic.Estimate(scx, scy, gcx, gcy)
}

func finiteCoords(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// search is the shared expansion loop behind FindPath and FindPartialPath.
func (p *Pathfinder) search(sx, sy, ex, ey, maxDistance float64, partial bool) [][2]float64 {
	started := time.Now()
	p.stats = SearchStats{NodeBudget: p.nodeBudget}
	finish := func(outcome SearchOutcome, path [][2]float64) [][2]float64 {
		p.stats.Outcome = outcome
		p.stats.Duration = time.Since(started)
		if p.log != nil {
			p.log.add(p.stats, len(path))
		}
		return path
	}

	if !finiteCoords(sx, sy, ex, ey) {
		return finish(OutcomeNoPathFound, nil)
	}
	scx, scy := p.grid.WorldToGrid(sx, sy)
	gcx, gcy := p.grid.WorldToGrid(ex, ey)
	if !p.grid.InBounds(scx, scy) || !p.grid.InBounds(gcx, gcy) {
		return finish(OutcomeNoPathFound, nil)
	}

	// Intra-cell movement never needs a search.
	if scx == gcx && scy == gcy {
		if math.Hypot(ex-sx, ey-sy) > sameCellEpsilon {
			return finish(OutcomePathFound, [][2]float64{{sx, sy}, {ex, ey}})
		}
		return finish(OutcomePathFound, [][2]float64{{ex, ey}})
	}

	if !partial && !p.grid.IsWalkable(gcx, gcy) {
		return finish(OutcomeNoPathFound, nil)
	}

	rules := p.rules.normalized()

	key := func(cx, cy int) int { return cy*p.grid.width + cx }

	start := &pathNode{cx: scx, cy: scy, h: p.heuristic.Estimate(scx, scy, gcx, gcy)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := make(map[int]*pathNode)
	best[key(scx, scy)] = start

	// Closest approach to the goal seen so far, for partial searches.
	// Strictly-lower h replaces, so ties keep the first-discovered node and
	// the result stays deterministic.
	closest := start

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		k := key(cur.cx, cur.cy)
		if closed[k] {
			continue
		}
		closed[k] = true
		p.stats.NodesExpanded++

		if cur.cx == gcx && cur.cy == gcy {
			return finish(OutcomePathFound, p.buildPath(cur, sx, sy, ex, ey, true))
		}

		if partial && cur.h < closest.h {
			closest = cur
		}

		if p.stats.NodesExpanded >= p.nodeBudget {
			if partial {
				return finish(OutcomePartialPath, p.buildPath(closest, sx, sy, ex, ey, false))
			}
			return finish(OutcomeAborted, nil)
		}

		if partial && maxDistance > 0 && cur.g > maxDistance {
			continue
		}

		for _, nb := range rules.ValidNeighbors(p.grid, cur.cx, cur.cy) {
			nk := key(nb[0], nb[1])
			if closed[nk] {
				continue
			}
			tentG := cur.g + rules.MoveCost(cur.cx, cur.cy, nb[0], nb[1])
			if prev, ok := best[nk]; ok && prev.g <= tentG {
				continue
			}
			node := &pathNode{
				cx:     nb[0],
				cy:     nb[1],
				g:      tentG,
				h:      p.heuristic.Estimate(nb[0], nb[1], gcx, gcy),
				parent: cur,
			}
			best[nk] = node
			heap.Push(ol, node)
		}
	}

	if partial {
		return finish(OutcomePartialPath, p.buildPath(closest, sx, sy, ex, ey, false))
	}
	return finish(OutcomeNoPathFound, nil)
}

// buildPath walks parent links from end back to the start, reverses, and
// converts cells to world coordinates. The first point is the exact start
// position; the last is the exact goal position when the goal was reached,
// otherwise the reached cell's center.
func (p *Pathfinder) buildPath(end *pathNode, sx, sy, ex, ey float64, reachedGoal bool) [][2]float64 {
	var cells [][2]int
	for n := end; n != nil; n = n.parent {
		cells = append(cells, [2]int{n.cx, n.cy})
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	path := make([][2]float64, len(cells))
	for i, c := range cells {
		wx, wy := p.grid.GridToWorld(c[0], c[1])
		path[i] = [2]float64{wx, wy}
	}
	path[0] = [2]float64{sx, sy}
	if reachedGoal {
		path[len(path)-1] = [2]float64{ex, ey}
	}
	return path
}
