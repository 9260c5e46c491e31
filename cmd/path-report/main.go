// Command path-report runs headless pathfinding benchmarks over seeded
// obstacle layouts and prints aggregate search statistics. Exit status is
// nonzero when an optimized path fails validation, so it doubles as a
// regression check.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Garsondee/gridnav/internal/nav"
	"github.com/Garsondee/gridnav/internal/scenario"
)

type runStats struct {
	runIndex int
	seed     int64

	found   bool
	partial bool
	aborted bool

	nodesExpanded int
	searchTime    time.Duration
	rawPoints     int
	optPoints     int
	warnings      []string
	invariantErr  string
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var width, height, cell int
	var density float64
	var budget int
	var preset string
	var heuristicName string
	var verbose bool

	flag.IntVar(&runs, "runs", 20, "number of seeded layouts to probe")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&width, "w", 60, "grid width in cells")
	flag.IntVar(&height, "h", 40, "grid height in cells")
	flag.IntVar(&cell, "cell", 16, "cell size in world units")
	flag.Float64Var(&density, "density", 1.0, "obstacle density multiplier")
	flag.IntVar(&budget, "budget", nav.DefaultNodeBudget, "node expansion budget per search")
	flag.StringVar(&preset, "preset", "point-and-click", "movement preset: point-and-click, grid-strategy, open-field")
	flag.StringVar(&heuristicName, "heuristic", "octile", "heuristic: manhattan, euclidean, octile")
	flag.BoolVar(&verbose, "v", false, "print the per-search log for each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	rules, ok := presetByName(preset)
	if !ok {
		fmt.Printf("error: unsupported preset %q\n", preset)
		os.Exit(2)
	}
	heuristic, ok := heuristicByName(heuristicName)
	if !ok {
		fmt.Printf("error: unsupported heuristic %q\n", heuristicName)
		os.Exit(2)
	}

	cfg := scenario.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.CellSize = cell
	cfg.Density = density

	fmt.Printf("=== Pathfinding Report ===\n")
	fmt.Printf("grid=%dx%d cell=%d density=%.2f preset=%s heuristic=%s budget=%d runs=%d seed_base=%d\n\n",
		width, height, cell, density, preset, heuristic, budget, runs, seedBase)

	all := make([]runStats, 0, runs)
	failed := false
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runProbe(i+1, seed, cfg, rules, heuristic, budget, verbose)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		if rs.invariantErr != "" {
			failed = true
		}
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
	if failed {
		fmt.Println("\nFAIL: invariant violations detected")
		os.Exit(1)
	}
}

func presetByName(name string) (nav.MovementRules, bool) {
	switch name {
	case "point-and-click":
		return nav.PointAndClickMovement(), true
	case "grid-strategy":
		return nav.GridStrategyMovement(), true
	case "open-field":
		return nav.OpenFieldMovement(), true
	default:
		return nav.MovementRules{}, false
	}
}

func heuristicByName(name string) (nav.HeuristicMethod, bool) {
	switch name {
	case "manhattan":
		return nav.HeuristicManhattan, true
	case "euclidean":
		return nav.HeuristicEuclidean, true
	case "octile":
		return nav.HeuristicOctile, true
	default:
		return 0, false
	}
}

// runProbe generates one layout and runs a corner-to-corner search, falling
// back to a partial path when no full route exists.
func runProbe(runIndex int, seed int64, cfg scenario.Config, rules nav.MovementRules, heuristic nav.HeuristicMethod, budget int, verbose bool) (runStats, error) {
	rs := runStats{runIndex: runIndex, seed: seed}

	grid, err := scenario.Generate(cfg, seed)
	if err != nil {
		return rs, err
	}

	pf := nav.NewPathfinder(grid)
	pf.SetMovementRules(rules)
	pf.SetHeuristic(heuristic)
	pf.SetNodeBudget(budget)
	log := nav.NewSearchLog(0)
	pf.SetLog(log)
	rs.warnings = pf.ValidateConfig()

	sx, sy, gx, gy := scenario.Corners(cfg)
	path := pf.FindPath(sx, sy, gx, gy)
	stats := pf.Stats()
	rs.nodesExpanded = stats.NodesExpanded
	rs.searchTime = stats.Duration
	rs.aborted = stats.Outcome == nav.OutcomeAborted

	if path == nil {
		path = pf.FindPartialPath(sx, sy, gx, gy, 0)
		rs.partial = true
	} else {
		rs.found = true
	}
	rs.rawPoints = len(path)

	opt := nav.NewOptimizer(grid)
	optimized := opt.Optimize(path)
	rs.optPoints = len(optimized)

	// A valid raw path must stay valid through optimization. Partial paths
	// that start on a blocked cell are exempt: the raw path is already
	// invalid by the optimizer's definition.
	if opt.IsPathValid(path) && !opt.IsPathValid(optimized) {
		rs.invariantErr = "optimized path failed validation"
	}

	if verbose {
		for _, e := range log.Entries() {
			fmt.Println("  " + e.String())
		}
	}
	return rs, nil
}

func printRun(rs runStats) {
	status := "no_path"
	if rs.found {
		status = "found"
	} else if rs.partial {
		status = "partial"
	}
	if rs.aborted {
		status = "aborted"
	}
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result=%s nodes=%d time=%s raw_points=%d opt_points=%d\n",
		status, rs.nodesExpanded, rs.searchTime, rs.rawPoints, rs.optPoints)
	for _, w := range rs.warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if rs.invariantErr != "" {
		fmt.Printf("INVARIANT VIOLATION: %s\n", rs.invariantErr)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	var found, partial, aborted int
	var nodes, rawPts, optPts int
	var elapsed time.Duration
	for _, rs := range all {
		if rs.found {
			found++
		}
		if rs.partial {
			partial++
		}
		if rs.aborted {
			aborted++
		}
		nodes += rs.nodesExpanded
		rawPts += rs.rawPoints
		optPts += rs.optPoints
		elapsed += rs.searchTime
	}
	n := len(all)
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d found=%d partial=%d aborted=%d\n", n, found, partial, aborted)
	fmt.Printf("avg_nodes_expanded=%.1f avg_search_time=%s\n",
		avg(nodes, n), avgDuration(elapsed, n))
	fmt.Printf("avg_raw_points=%.1f avg_opt_points=%.1f reduction=%.0f%%\n",
		avg(rawPts, n), avg(optPts, n), reduction(rawPts, optPts))
}

func avg(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgDuration(sum time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return sum / time.Duration(n)
}

func reduction(raw, opt int) float64 {
	if raw == 0 {
		return 0
	}
	return 100 * (1 - float64(opt)/float64(raw))
}
