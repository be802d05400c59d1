package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
)

// ExampleDijkstra computes distances and one shortest path on a small
// directed graph.
func ExampleDijkstra() {
	// 1) Build 0→1 (4), 0→2 (1), 2→1 (1), 1→3 (3).
	g, _ := core.FromTriples([][3]int64{{0, 1, 4}, {0, 2, 1}, {2, 1, 1}, {1, 3, 3}})

	// 2) Solve from vertex 0 and keep predecessors.
	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dist)
	fmt.Println(dijkstra.Path(prev, 0, 3))
	// Output:
	// [0 2 1 5]
	// [0 2 1 3]
}
