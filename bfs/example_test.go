package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/transitcat/bfs"
	"github.com/katalvlaran/transitcat/core"
)

// ExampleBFS walks a small fan-out: 0→1, 0→2, 1→3.
func ExampleBFS() {
	g := core.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 1)

	res, _ := bfs.BFS(g, 0)
	fmt.Println("order:", res.Order)
	fmt.Println("depth:", res.Depth)
	// Output:
	// order: [0 1 2 3]
	// depth: [0 1 1 2]
}
