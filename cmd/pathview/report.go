package main

import (
	"fmt"
	"strings"
)

// debugReport renders the current viewer state as a paste-ready text block:
// layout parameters, search configuration and stats, warnings, and the
// optimized waypoint list.
func (v *viewer) debugReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- gridnav debug report ---\n")
	fmt.Fprintf(&b, "seed=%d grid=%dx%d cell=%d density=%.2f\n",
		v.seed, v.cfg.Width, v.cfg.Height, v.cfg.CellSize, v.cfg.Density)
	fmt.Fprintf(&b, "preset=%s heuristic=%s optimizer=%v\n",
		presets[v.presetIdx].name, heuristics[v.heurIdx], v.optimize)

	if v.hasStart && v.hasGoal {
		fmt.Fprintf(&b, "start=(%.1f, %.1f) goal=(%.1f, %.1f)\n", v.startX, v.startY, v.goalX, v.goalY)
	} else {
		b.WriteString("start/goal: not set\n")
	}

	stats := v.pf.Stats()
	fmt.Fprintf(&b, "outcome=%s nodes_expanded=%d budget=%d time=%s\n",
		stats.Outcome, stats.NodesExpanded, stats.NodeBudget, stats.Duration)

	for _, w := range v.pf.ValidateConfig() {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}

	fmt.Fprintf(&b, "raw_points=%d opt_points=%d\n", len(v.rawPath), len(v.optPath))
	if len(v.optPath) > 0 {
		b.WriteString("waypoints:\n")
		for i, pt := range v.optPath {
			fmt.Fprintf(&b, "  %2d: (%.1f, %.1f)\n", i, pt[0], pt[1])
		}
	}
	return b.String()
}
