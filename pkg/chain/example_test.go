package chain_test

import (
	"fmt"

	"github.com/matzehuels/combikit/pkg/chain"
)

func ExampleMerge() {
	loops := chain.Merge([]chain.Segment[int]{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	fmt.Println(loops[0].Values, loops[0].IsLoop)

	open := chain.Merge([]chain.Segment[int]{{0, 1}, {1, 2}})
	fmt.Println(open[0].Values, open[0].IsLoop)
	// Output:
	// [0 1 2 3] true
	// [0 1 2] false
}
