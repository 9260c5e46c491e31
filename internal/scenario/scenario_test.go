package scenario

import (
	"testing"

	"github.com/Garsondee/gridnav/internal/nav"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := Generate(cfg, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg, 7)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if a.IsWalkable(x, y) != b.IsWalkable(x, y) {
				t.Fatalf("layouts differ at (%d,%d) for the same seed", x, y)
			}
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	cfg := DefaultConfig()
	a, _ := Generate(cfg, 1)
	b, _ := Generate(cfg, 2)
	same := true
	for y := 0; y < cfg.Height && same; y++ {
		for x := 0; x < cfg.Width; x++ {
			if a.IsWalkable(x, y) != b.IsWalkable(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different seeds produced identical layouts")
	}
}

func TestGenerate_BorderClear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 3 // crank obstacles up so bleed into the border is likely
	g, err := Generate(cfg, 99)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			inBorder := x < cfg.Border || y < cfg.Border ||
				x >= cfg.Width-cfg.Border || y >= cfg.Height-cfg.Border
			if inBorder && !g.IsWalkable(x, y) {
				t.Fatalf("border cell (%d,%d) is blocked", x, y)
			}
		}
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := Generate(cfg, 1); err == nil {
		t.Fatal("expected error for zero width")
	}
	cfg = DefaultConfig()
	cfg.Density = -1
	if _, err := Generate(cfg, 1); err == nil {
		t.Fatal("expected error for negative density")
	}
}

// The border strip is re-cleared after obstacle placement, so the probe
// corners must land on walkable cells no matter how the obstacles fall.
func TestCorners_WalkableAcrossSeeds(t *testing.T) {
	cfg := DefaultConfig()
	sx, sy, gx, gy := Corners(cfg)
	for seed := int64(1); seed <= 300; seed++ {
		g, err := Generate(cfg, seed)
		if err != nil {
			t.Fatal(err)
		}
		scx, scy := g.WorldToGrid(sx, sy)
		if !g.IsWalkable(scx, scy) {
			t.Fatalf("seed %d: start probe cell (%d,%d) blocked", seed, scx, scy)
		}
		gcx, gcy := g.WorldToGrid(gx, gy)
		if !g.IsWalkable(gcx, gcy) {
			t.Fatalf("seed %d: goal probe cell (%d,%d) blocked", seed, gcx, gcy)
		}
	}
}

// The probes sit symmetrically inside the clear strip: one cell in from the
// top-left, one cell in from the bottom-right.
func TestCorners_SymmetricInClearStrip(t *testing.T) {
	cfg := DefaultConfig()
	g, err := Generate(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	sx, sy, gx, gy := Corners(cfg)
	scx, scy := g.WorldToGrid(sx, sy)
	if scx != cfg.Border-1 || scy != cfg.Border-1 {
		t.Fatalf("start probe at (%d,%d), want (%d,%d)", scx, scy, cfg.Border-1, cfg.Border-1)
	}
	gcx, gcy := g.WorldToGrid(gx, gy)
	if gcx != cfg.Width-cfg.Border || gcy != cfg.Height-cfg.Border {
		t.Fatalf("goal probe at (%d,%d), want (%d,%d)", gcx, gcy, cfg.Width-cfg.Border, cfg.Height-cfg.Border)
	}
}

func TestCorners_ProbeIsRoutable(t *testing.T) {
	cfg := DefaultConfig()
	g, err := Generate(cfg, 3)
	if err != nil {
		t.Fatal(err)
	}
	sx, sy, gx, gy := Corners(cfg)

	scx, scy := g.WorldToGrid(sx, sy)
	gcx, gcy := g.WorldToGrid(gx, gy)
	if !g.IsWalkable(scx, scy) || !g.IsWalkable(gcx, gcy) {
		t.Fatal("corner probes must land on walkable border cells")
	}

	// The clear border connects the corners, so a full route always exists.
	pf := nav.NewPathfinder(g)
	pf.SetNodeBudget(cfg.Width * cfg.Height)
	if pf.FindPath(sx, sy, gx, gy) == nil {
		t.Fatal("expected a corner-to-corner route along the clear border")
	}
}
