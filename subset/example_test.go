package subset_test

import (
	"fmt"

	"github.com/katalvlaran/tourlen/subset"
)

// ExampleEnumerate lists the 3-element subsets of {1,2,3,4} that contain 1.
func ExampleEnumerate() {
	for _, s := range subset.Enumerate(3, subset.Of(1, 2, 3, 4), 1) {
		fmt.Println(s)
	}
	// Output:
	// {1,2,3}
	// {1,2,4}
	// {1,3,4}
}

// ExampleAll stops the enumeration after the first two subsets.
func ExampleAll() {
	n := 0
	for s := range subset.All(2, subset.Full(5), 0) {
		fmt.Println(s, s.Len())
		if n++; n == 2 {
			break
		}
	}
	fmt.Println("total:", subset.Count(2, subset.Full(5)))
	// Output:
	// {0,1} 2
	// {0,2} 2
	// total: 4
}
