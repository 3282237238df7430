package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/matrix"
)

// ExampleLaplacian builds the Laplacian of a three-vertex path and applies it
// to a density field. The result sums to zero, so diffusion moves mass
// between vertices without creating or destroying it.
func ExampleLaplacian() {
	a, b, c := core.NewVertex(1), core.NewVertex(2), core.NewVertex(3)
	ab, _ := core.Connect(a, b)
	bc, _ := core.Connect(b, c)
	g, _ := core.NewGraph([]*core.Vertex{a, b, c}, []*core.Edge{ab, bc})

	l, _ := matrix.Laplacian(g)
	fmt.Print(l)

	lu, _ := matrix.MatVec(l, []float64{1, 1, 2})
	fmt.Println(lu, matrix.Sum(lu))

	// Output:
	// [1, -1, 0]
	// [-1, 2, -1]
	// [0, -1, 1]
	// [0 -1 1] 0
}
