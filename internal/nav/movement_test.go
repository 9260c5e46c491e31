package nav

import (
	"math"
	"testing"
)

func TestMovementPresets(t *testing.T) {
	pc := PointAndClickMovement()
	if !pc.AllowDiagonal || !pc.PreventCornerCutting || pc.DiagonalCost != math.Sqrt2 {
		t.Fatalf("unexpected point-and-click preset: %+v", pc)
	}
	gs := GridStrategyMovement()
	if gs.AllowDiagonal {
		t.Fatal("grid-strategy preset must disable diagonal movement")
	}
	of := OpenFieldMovement()
	if !of.AllowDiagonal || of.PreventCornerCutting {
		t.Fatalf("unexpected open-field preset: %+v", of)
	}
}

func TestMoveCost(t *testing.T) {
	r := PointAndClickMovement()
	if got := r.MoveCost(2, 2, 3, 2); got != 1.0 {
		t.Fatalf("orthogonal step cost: expected 1, got %v", got)
	}
	if got := r.MoveCost(2, 2, 2, 1); got != 1.0 {
		t.Fatalf("orthogonal step cost: expected 1, got %v", got)
	}
	if got := r.MoveCost(2, 2, 3, 3); got != math.Sqrt2 {
		t.Fatalf("diagonal step cost: expected √2, got %v", got)
	}
}

// Two orthogonally blocked cells flanking a diagonal: the guard must drop
// the diagonal, and switching the guard off must restore it.
func TestValidNeighbors_CornerCutting(t *testing.T) {
	g := mustGrid(t, 5, 5, 16)
	g.SetWalkable(3, 2, false)
	g.SetWalkable(2, 3, false)

	guarded := PointAndClickMovement()
	for _, n := range guarded.ValidNeighbors(g, 2, 2) {
		if n == [2]int{3, 3} {
			t.Fatal("corner-cutting diagonal must be excluded with the guard on")
		}
	}

	open := OpenFieldMovement()
	found := false
	for _, n := range open.ValidNeighbors(g, 2, 2) {
		if n == [2]int{3, 3} {
			found = true
		}
	}
	if !found {
		t.Fatal("diagonal must be included with the guard off")
	}
}

func TestValidNeighbors_FourWay(t *testing.T) {
	g := mustGrid(t, 5, 5, 16)
	r := GridStrategyMovement()
	n := r.ValidNeighbors(g, 2, 2)
	if len(n) != 4 {
		t.Fatalf("expected 4 neighbors for 4-way movement, got %d", len(n))
	}
	for _, c := range n {
		if c[0] != 2 && c[1] != 2 {
			t.Fatalf("diagonal neighbor (%d,%d) returned for 4-way movement", c[0], c[1])
		}
	}
}

func TestValidNeighbors_SkipsBlocked(t *testing.T) {
	g := mustGrid(t, 5, 5, 16)
	g.SetWalkable(3, 2, false)
	r := GridStrategyMovement()
	for _, n := range r.ValidNeighbors(g, 2, 2) {
		if n == [2]int{3, 2} {
			t.Fatal("blocked neighbor must not be returned")
		}
	}
}

// A zero-value rules struct would make diagonal steps free; the pathfinder
// must normalize it to √2 on the way in.
func TestSetMovementRules_NormalizesDiagonalCost(t *testing.T) {
	g := mustGrid(t, 5, 5, 16)
	pf := NewPathfinder(g)
	pf.SetMovementRules(MovementRules{AllowDiagonal: true})
	if got := pf.Rules().DiagonalCost; got != math.Sqrt2 {
		t.Fatalf("expected normalized diagonal cost √2, got %v", got)
	}
}
