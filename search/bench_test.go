package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/search"
)

// BenchmarkFindPath measures a corner-to-corner search on a 200×200 grid
// with ~20% random obstacles.
func BenchmarkFindPath(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	g, err := occgrid.Build(n, n, func(c occgrid.Cell) occgrid.CellState {
		if (c.X == 0 && c.Y == 0) || (c.X == n-1 && c.Y == n-1) {
			return occgrid.KnownFree
		}
		if rng.Float64() < 0.2 {
			return occgrid.Obstacle
		}
		return occgrid.KnownFree
	})
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	start, goal := occgrid.Cell{}, occgrid.Cell{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindPath(g, start, goal)
	}
}
