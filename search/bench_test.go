package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func randomRisk(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	vals := make([][]int, n)
	for r := range vals {
		vals[r] = make([]int, n)
		for c := range vals[r] {
			vals[r][c] = 1 + rng.Intn(9)
		}
	}
	g, err := grid.New(vals)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkSearch_Risk100 measures a corner-to-corner search on a 100×100 risk map.
func BenchmarkSearch_Risk100(b *testing.B) {
	g := randomRisk(b, 100)
	goal := grid.Point{Row: 99, Col: 99}
	next := stepInto(g, noWall)
	isGoal := at(goal)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.SearchFunc(grid.Point{}, isGoal, next, search.WithCapacity[grid.Point](10000))
	}
}

// BenchmarkDistances_Risk100 measures a full exploration of the same map.
func BenchmarkDistances_Risk100(b *testing.B) {
	g := randomRisk(b, 100)
	next := stepInto(g, noWall)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Distances(grid.Point{}, next)
	}
}
