package combo_test

import (
	"fmt"

	"github.com/matzehuels/combikit/pkg/combo"
)

func ExamplePermutations() {
	perms, _ := combo.Permutations(3, 0)
	fmt.Println("All assignments of [0,1,2]:")
	for _, p := range perms {
		fmt.Println(p)
	}
	// Output:
	// All assignments of [0,1,2]:
	// [0 1 2]
	// [0 2 1]
	// [1 0 2]
	// [1 2 0]
	// [2 0 1]
	// [2 1 0]
}

func ExampleOdometer() {
	o, _ := combo.NewOdometer(2)
	_ = o.Start()
	for {
		pairs, _ := o.Assignment()
		fmt.Println(pairs)
		if ok, _ := o.Advance(); !ok {
			break
		}
	}
	// Output:
	// [{0 0} {1 1}]
	// [{0 1} {1 0}]
}

func ExampleAllSubsets() {
	for sub := range combo.AllSubsets(3) {
		fmt.Println(sub)
	}
	// Output:
	// [0 1 2]
	// [0 1]
	// [0 2]
	// [1 2]
	// [0]
	// [1]
	// [2]
}

func ExampleNewGroupCombos() {
	gc, _ := combo.NewGroupCombos([][]int{{0, 1}, {2, 3}}, nil)
	for {
		p, ok := gc.Next()
		if !ok {
			break
		}
		fmt.Println(p)
	}
	// Output:
	// [[0] [1] [2] [3]]
	// [[0 1] [2] [3]]
	// [[0 1] [2 3]]
	// [[2 3] [0] [1]]
}

func ExampleFactorial() {
	fmt.Println("4! =", combo.Factorial(4))
	fmt.Println("5! =", combo.Factorial(5))
	// Output:
	// 4! = 24
	// 5! = 120
}

func ExampleConstrained() {
	// Orderings of four items where 1 and 2 stay side by side.
	seq, _ := combo.Constrained(4, [][]int{{1, 2}})
	n := 0
	for range seq {
		n++
	}
	fmt.Println(n)
	// Output:
	// 12
}
