package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_Tile enlarges a 2×2 risk map three times in each direction.
// Each tile adds its tile distance; 9 wraps back to 1.
func ExampleGrid_Tile() {
	g, _ := grid.ParseDigits(strings.NewReader("18\n92\n"))
	big, _ := g.Tile(3, 9)
	for _, row := range big.Values() {
		fmt.Println(row)
	}
	// Output:
	// [1 8 2 9 3 1]
	// [9 2 1 3 2 4]
	// [2 9 3 1 4 2]
	// [1 3 2 4 3 5]
	// [3 1 4 2 5 3]
	// [2 4 3 5 4 6]
}
