package search_test

import (
	"fmt"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/search"
)

// ExampleFindPath routes around a pillar. Both diagonals next to the pillar
// cut a blocked corner, so the search walks along the border.
//
//	S . .
//	. # .
//	. . G
func ExampleFindPath() {
	raw, _ := occgrid.FromObstacles(3, 3, []occgrid.Cell{{X: 1, Y: 1}})
	g, _ := occgrid.Build(3, 3, func(c occgrid.Cell) occgrid.CellState {
		if raw.Blocked(c) {
			return occgrid.Obstacle
		}
		return occgrid.KnownFree
	})

	res, err := search.FindPath(g, occgrid.Cell{X: 0, Y: 0}, occgrid.Cell{X: 2, Y: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Printf("cost: %.1f\n", res.Cost)

	// Output:
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2)]
	// cost: 4.0
}
