// Package scenario generates deterministic obstacle layouts for the debug
// viewer, the benchmark CLI, and stress tests. A layout is just a populated
// nav.Grid; nothing here knows about searching.
package scenario

import (
	"fmt"
	"math/rand"

	"github.com/Garsondee/gridnav/internal/nav"
)

// Config holds tuneable parameters for layout generation.
type Config struct {
	Width    int // grid width in cells
	Height   int // grid height in cells
	CellSize int // world units per cell

	BuildingCount int     // rectangular obstacles
	CraterCount   int     // circular obstacles
	Density       float64 // scales obstacle counts (1.0 = as configured)
	Border        int     // cells kept clear around the map edge
}

// DefaultConfig returns a medium-density layout on a 60×40 grid of 16-unit
// cells.
func DefaultConfig() Config {
	return Config{
		Width:         60,
		Height:        40,
		CellSize:      16,
		BuildingCount: 14,
		CraterCount:   6,
		Density:       1.0,
		Border:        2,
	}
}

// Generate builds an obstacle grid for a seed. The same config and seed
// always produce the same layout. The border strip is guaranteed walkable,
// so corner-to-corner probes always have valid endpoints.
func Generate(cfg Config, seed int64) (*nav.Grid, error) {
	g, err := nav.NewGrid(cfg.Width, cfg.Height, cfg.CellSize)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if cfg.Density < 0 {
		return nil, fmt.Errorf("scenario: density must be >= 0, got %f", cfg.Density)
	}

	rng := rand.New(rand.NewSource(seed))
	cs := float64(cfg.CellSize)
	worldW := float64(cfg.Width) * cs
	worldH := float64(cfg.Height) * cs
	margin := float64(cfg.Border) * cs

	buildings := int(float64(cfg.BuildingCount) * cfg.Density)
	for i := 0; i < buildings; i++ {
		w := (2 + rng.Float64()*6) * cs
		h := (2 + rng.Float64()*6) * cs
		x := margin + rng.Float64()*(worldW-2*margin-w)
		y := margin + rng.Float64()*(worldH-2*margin-h)
		g.SetRectWalkable(x, y, w, h, false)
	}

	craters := int(float64(cfg.CraterCount) * cfg.Density)
	for i := 0; i < craters; i++ {
		r := (1 + rng.Float64()*3) * cs
		x := margin + r + rng.Float64()*(worldW-2*(margin+r))
		y := margin + r + rng.Float64()*(worldH-2*(margin+r))
		g.SetCircleWalkable(x, y, r, false)
	}

	// Re-clear the border strip: obstacle placement is margin-constrained
	// by origin, but a wide rect or crater can still bleed into it.
	clearBorder(g, cfg.Border)
	return g, nil
}

func clearBorder(g *nav.Grid, border int) {
	if border <= 0 {
		return
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x < border || y < border || x >= g.Width()-border || y >= g.Height()-border {
				g.SetWalkable(x, y, true)
			}
		}
	}
}

// Corners returns world-space points just inside the clear border at the
// top-left and bottom-right, the standard probe pair for a layout.
func Corners(cfg Config) (sx, sy, gx, gy float64) {
	cs := float64(cfg.CellSize)
	b := float64(cfg.Border)
	if b < 1 {
		b = 1
	}
	sx = (b - 0.5) * cs
	sy = (b - 0.5) * cs
	gx = (float64(cfg.Width) - b + 0.5) * cs
	gy = (float64(cfg.Height) - b + 0.5) * cs
	return
}
