package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleBFS walks a small maze and prints the step count to the exit
// together with the route.
func ExampleBFS() {
	g, _ := grid.ParseChars(strings.NewReader("..#\n#.#\n...\n"))
	res, _ := bfs.BFS(g, grid.Point{}, bfs.WithWalls(g, '#'))

	exit := grid.Point{Row: 2, Col: 2}
	path, _ := res.PathTo(exit)
	steps, _ := res.Depth(exit)
	fmt.Println("steps:", steps)
	fmt.Println("path:", path)
	// Output:
	// steps: 4
	// path: [0,0 0,1 1,1 2,1 2,2]
}
