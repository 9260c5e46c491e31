package nav

import (
	"fmt"
	"math"
)

// Grid is a 2D walkability map over a uniform cell grid (true = walkable).
// Out-of-range cells always read as not walkable, and out-of-range writes
// are silently ignored — callers frequently probe near the boundary.
//
// A Grid is read-only for the duration of a search. Callers that mutate
// walkability while background searches are running must either serialize
// access or hand each worker a Clone.
type Grid struct {
	width    int
	height   int
	cellSize int // world units per cell
	walkable []bool
}

// NewGrid creates a fully walkable grid. Zero or negative dimensions or
// cell size are programming errors and fail at construction.
func NewGrid(width, height, cellSize int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("nav: grid dimensions must be positive, got %dx%d", width, height)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("nav: cell size must be positive, got %d", cellSize)
	}
	g := &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		walkable: make([]bool, width*height),
	}
	for i := range g.walkable {
		g.walkable[i] = true
	}
	return g, nil
}

func (g *Grid) Width() int    { return g.width }
func (g *Grid) Height() int   { return g.height }
func (g *Grid) CellSize() int { return g.cellSize }

// InBounds reports whether (x, y) is a valid cell index.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// IsWalkable returns false for blocked or out-of-range cells.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.walkable[y*g.width+x]
}

// SetWalkable sets one cell's flag. Out-of-range coordinates are a no-op.
func (g *Grid) SetWalkable(x, y int, walkable bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.walkable[y*g.width+x] = walkable
}

// WorldToGrid converts world coordinates to cell coordinates by floor
// division. Negative world coordinates map to negative cell indices, which
// the bounds checks then reject.
func (g *Grid) WorldToGrid(wx, wy float64) (int, int) {
	cs := float64(g.cellSize)
	return int(math.Floor(wx / cs)), int(math.Floor(wy / cs))
}

// GridToWorld returns the world-space center of cell (x, y).
func (g *Grid) GridToWorld(x, y int) (float64, float64) {
	cs := float64(g.cellSize)
	return float64(x)*cs + cs/2, float64(y)*cs + cs/2
}

// SetRectWalkable applies the flag to every cell covered by the world-space
// rectangle with origin (wx, wy) and size w×h. Cells whose extent merely
// touches the rectangle's far edge are not covered.
func (g *Grid) SetRectWalkable(wx, wy, w, h float64, walkable bool) {
	if w <= 0 || h <= 0 {
		return
	}
	cs := float64(g.cellSize)
	x0, y0 := g.WorldToGrid(wx, wy)
	x1 := int(math.Ceil((wx+w)/cs)) - 1
	y1 := int(math.Ceil((wy+h)/cs)) - 1

	x0 = max(0, x0)
	y0 = max(0, y0)
	x1 = min(g.width-1, x1)
	y1 = min(g.height-1, y1)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			g.walkable[cy*g.width+cx] = walkable
		}
	}
}

// SetCircleWalkable applies the flag to every cell whose center lies within
// radius r of the world-space point (cx, cy).
func (g *Grid) SetCircleWalkable(cx, cy, r float64, walkable bool) {
	if r <= 0 {
		return
	}
	cs := float64(g.cellSize)
	x0 := int(math.Floor((cx - r) / cs))
	y0 := int(math.Floor((cy - r) / cs))
	x1 := int(math.Ceil((cx+r)/cs)) - 1
	y1 := int(math.Ceil((cy+r)/cs)) - 1

	x0 = max(0, x0)
	y0 = max(0, y0)
	x1 = min(g.width-1, x1)
	y1 = min(g.height-1, y1)

	for gy := y0; gy <= y1; gy++ {
		for gx := x0; gx <= x1; gx++ {
			wx, wy := g.GridToWorld(gx, gy)
			dx := wx - cx
			dy := wy - cy
			if dx*dx+dy*dy <= r*r {
				g.walkable[gy*g.width+gx] = walkable
			}
		}
	}
}

// gridDirs is the shared neighbor expansion order: orthogonals first, then
// diagonals. The order is fixed so searches are deterministic.
var gridDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Neighbors returns the walkable neighbors of (x, y). A diagonal neighbor is
// included only when both flanking orthogonal cells are walkable, so a route
// can never clip through a wall corner. MovementRules reuses this guard but
// can switch it off.
func (g *Grid) Neighbors(x, y int, allowDiagonal bool) [][2]int {
	dirs := gridDirs[:4]
	if allowDiagonal {
		dirs = gridDirs[:]
	}
	out := make([][2]int, 0, len(dirs))
	for _, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		if !g.IsWalkable(nx, ny) {
			continue
		}
		if d[0] != 0 && d[1] != 0 {
			if !g.IsWalkable(x+d[0], y) || !g.IsWalkable(x, y+d[1]) {
				continue
			}
		}
		out = append(out, [2]int{nx, ny})
	}
	return out
}

// Clone returns an independent copy, for handing a stable snapshot to a
// background search worker while the original keeps being edited.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:    g.width,
		height:   g.height,
		cellSize: g.cellSize,
		walkable: make([]bool, len(g.walkable)),
	}
	copy(c.walkable, g.walkable)
	return c
}
