package main

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/gridnav/internal/nav"
	"github.com/Garsondee/gridnav/internal/scenario"
)

// hudHeight is the pixel strip below the battlefield reserved for HUD text.
const hudHeight = 64

var (
	colBlocked  = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	colGridLine = color.RGBA{R: 34, G: 34, B: 40, A: 255}
	colRawPath  = color.RGBA{R: 90, G: 110, B: 90, A: 255}
	colOptPath  = color.RGBA{R: 90, G: 220, B: 120, A: 255}
	colStart    = color.RGBA{R: 80, G: 140, B: 255, A: 255}
	colGoal     = color.RGBA{R: 255, G: 120, B: 80, A: 255}
	colHudText  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

var presets = []struct {
	name  string
	rules nav.MovementRules
}{
	{"point-and-click", nav.PointAndClickMovement()},
	{"grid-strategy", nav.GridStrategyMovement()},
	{"open-field", nav.OpenFieldMovement()},
}

var heuristics = []nav.HeuristicMethod{
	nav.HeuristicOctile,
	nav.HeuristicEuclidean,
	nav.HeuristicManhattan,
}

type viewer struct {
	cfg  scenario.Config
	seed int64

	grid *nav.Grid
	pf   *nav.Pathfinder
	opt  *nav.Optimizer

	presetIdx int
	heurIdx   int
	optimize  bool

	startX, startY float64
	goalX, goalY   float64
	hasStart       bool
	hasGoal        bool

	rawPath [][2]float64
	optPath [][2]float64
	status  string

	windowW int
	windowH int

	prevKeys   map[ebiten.Key]bool
	prevMouseL bool
	prevMouseR bool
}

func newViewer() *viewer {
	cfg := scenario.DefaultConfig()
	v := &viewer{
		cfg:      cfg,
		seed:     1,
		optimize: true,
		windowW:  cfg.Width * cfg.CellSize,
		windowH:  cfg.Height*cfg.CellSize + hudHeight,
		prevKeys: make(map[ebiten.Key]bool),
		status:   "left click: start   right click: goal",
	}
	v.regenerate()
	return v
}

// regenerate rebuilds the grid for the current seed and drops any paths,
// which would be stale against the new layout.
func (v *viewer) regenerate() {
	grid, err := scenario.Generate(v.cfg, v.seed)
	if err != nil {
		// Config is fixed at startup; a generation failure is programmer error.
		panic(err)
	}
	v.grid = grid
	v.pf = nav.NewPathfinder(grid)
	v.opt = nav.NewOptimizer(grid)
	v.applyConfig()
	v.rawPath = nil
	v.optPath = nil
}

func (v *viewer) applyConfig() {
	v.pf.SetMovementRules(presets[v.presetIdx].rules)
	v.pf.SetHeuristic(heuristics[v.heurIdx])
}

// recompute runs a fresh search for the current start/goal pair.
func (v *viewer) recompute() {
	if !v.hasStart || !v.hasGoal {
		return
	}
	v.applyConfig()

	v.rawPath = v.pf.FindPath(v.startX, v.startY, v.goalX, v.goalY)
	stats := v.pf.Stats()
	if v.rawPath == nil {
		v.rawPath = v.pf.FindPartialPath(v.startX, v.startY, v.goalX, v.goalY, 0)
		stats = v.pf.Stats()
	}
	if v.optimize && v.rawPath != nil {
		v.optPath = v.opt.Optimize(v.rawPath)
	} else {
		v.optPath = nil
	}

	v.status = fmt.Sprintf("%s  nodes=%d/%d  t=%s  raw=%d opt=%d",
		stats.Outcome, stats.NodesExpanded, stats.NodeBudget, stats.Duration,
		len(v.rawPath), len(v.optPath))
	for _, w := range v.pf.ValidateConfig() {
		v.status += "  [warn: " + w + "]"
	}
}

func (v *viewer) keyJustPressed(k ebiten.Key, current map[ebiten.Key]bool) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !v.prevKeys[k]
}

func (v *viewer) Update() error {
	currentKeys := make(map[ebiten.Key]bool)

	if v.keyJustPressed(ebiten.KeyR, currentKeys) {
		v.seed++
		v.regenerate()
		v.hasStart = false
		v.hasGoal = false
		v.status = fmt.Sprintf("reseeded layout (seed=%d)", v.seed)
	}
	if v.keyJustPressed(ebiten.KeyP, currentKeys) {
		v.presetIdx = (v.presetIdx + 1) % len(presets)
		v.recompute()
	}
	if v.keyJustPressed(ebiten.KeyH, currentKeys) {
		v.heurIdx = (v.heurIdx + 1) % len(heuristics)
		v.recompute()
	}
	if v.keyJustPressed(ebiten.KeyO, currentKeys) {
		v.optimize = !v.optimize
		v.recompute()
	}
	if v.keyJustPressed(ebiten.KeyC, currentKeys) {
		report := v.debugReport()
		if err := clipboard.WriteAll(report); err != nil {
			v.status = "clipboard copy failed: " + err.Error()
		} else {
			v.status = "debug report copied to clipboard"
		}
	}
	v.prevKeys = currentKeys

	mx, my := ebiten.CursorPosition()
	mouseL := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mouseR := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	inField := my < v.cfg.Height*v.cfg.CellSize && mx >= 0 && mx < v.cfg.Width*v.cfg.CellSize && my >= 0
	// The battlefield is rendered 1:1, so screen pixels are world units.
	if mouseL && !v.prevMouseL && inField {
		v.startX, v.startY = float64(mx), float64(my)
		v.hasStart = true
		v.recompute()
	}
	if mouseR && !v.prevMouseR && inField {
		v.goalX, v.goalY = float64(mx), float64(my)
		v.hasGoal = true
		v.recompute()
	}
	v.prevMouseL = mouseL
	v.prevMouseR = mouseR

	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	cs := float32(v.cfg.CellSize)

	for cy := 0; cy < v.grid.Height(); cy++ {
		for cx := 0; cx < v.grid.Width(); cx++ {
			if !v.grid.IsWalkable(cx, cy) {
				vector.DrawFilledRect(screen, float32(cx)*cs, float32(cy)*cs, cs, cs, colBlocked, false)
			}
		}
	}
	// Faint cell grid over the field.
	for cx := 0; cx <= v.grid.Width(); cx++ {
		x := float32(cx) * cs
		vector.StrokeLine(screen, x, 0, x, float32(v.grid.Height())*cs, 1, colGridLine, false)
	}
	for cy := 0; cy <= v.grid.Height(); cy++ {
		y := float32(cy) * cs
		vector.StrokeLine(screen, 0, y, float32(v.grid.Width())*cs, y, 1, colGridLine, false)
	}

	drawPath(screen, v.rawPath, 1, colRawPath)
	drawPath(screen, v.optPath, 2, colOptPath)
	if v.optPath != nil {
		for _, pt := range v.optPath {
			vector.DrawFilledCircle(screen, float32(pt[0]), float32(pt[1]), 3, colOptPath, true)
		}
	}

	if v.hasStart {
		vector.DrawFilledCircle(screen, float32(v.startX), float32(v.startY), 5, colStart, true)
	}
	if v.hasGoal {
		vector.DrawFilledCircle(screen, float32(v.goalX), float32(v.goalY), 5, colGoal, true)
	}

	hudY := v.cfg.Height * v.cfg.CellSize
	text.Draw(screen, "[R]eseed  [P]reset  [H]euristic  [O]ptimizer  [C]opy report", basicfont.Face7x13, 8, hudY+18, colHudText)
	text.Draw(screen, fmt.Sprintf("preset=%s  heuristic=%s  optimizer=%v  seed=%d",
		presets[v.presetIdx].name, heuristics[v.heurIdx], v.optimize, v.seed),
		basicfont.Face7x13, 8, hudY+34, colHudText)
	ebitenutil.DebugPrintAt(screen, v.status, 8, hudY+42)
}

func drawPath(screen *ebiten.Image, path [][2]float64, width float32, col color.RGBA) {
	for i := 1; i < len(path); i++ {
		vector.StrokeLine(screen,
			float32(path[i-1][0]), float32(path[i-1][1]),
			float32(path[i][0]), float32(path[i][1]),
			width, col, true)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.windowW, v.windowH
}
