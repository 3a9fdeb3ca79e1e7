package costgrid_test

import (
	"fmt"

	"github.com/katalvlaran/heatpath/costgrid"
)

// ExampleParse loads a digit grid and inspects its corners.
func ExampleParse() {
	g, err := costgrid.ParseString("111\n991\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	end := g.End()
	cost, _ := g.Cost(end)
	fmt.Printf("%dx%d grid, end %v costs %d\n", g.Rows(), g.Cols(), end, cost)

	_, err = g.Cost(costgrid.Coordinate{Row: 2, Col: 0})
	fmt.Println(err)

	// Output:
	// 2x3 grid, end (1,2) costs 1
	// costgrid: coordinate out of bounds: (2,0) in 2x3 grid
}
