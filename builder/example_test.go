package builder_test

import (
	"fmt"

	"github.com/katalvlaran/eventchains/builder"
)

// ExampleRandomConnected builds the smallest benchmark-style fixture.
func ExampleRandomConnected() {
	g, err := builder.RandomConnected(5, 6, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", g.NodeCount(), "arcs:", g.EdgeCount(), "connected:", g.Connected())
	fmt.Println("neighbors of 2:", g.Neighbors(2))
	// Output:
	// nodes: 5 arcs: 12 connected: true
	// neighbors of 2: [{1 3} {3 1} {4 10}]
}
