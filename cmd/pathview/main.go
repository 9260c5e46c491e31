// Command pathview is an interactive debug viewer for the pathfinding
// engine: it renders a seeded obstacle grid, lets you place start and goal
// with the mouse, and draws the raw and optimized routes on top. It is a
// read-only consumer of the core — the grid is only regenerated between
// frames, never while a search runs.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	v := newViewer()
	ebiten.SetWindowTitle("gridnav pathview")
	ebiten.SetWindowSize(v.windowW, v.windowH)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
