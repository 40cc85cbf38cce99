package strategy_test

import (
	"fmt"

	"github.com/patternsmith/gofkit/strategy"
)

// ExampleTask swaps the algorithm under a live context; the caller's
// code does not change.
func ExampleTask() {
	task := strategy.NewTask(strategy.Slow{})
	fmt.Println(task.Run())

	task.SetStrategy(strategy.Fast{})
	fmt.Println(task.Run())
	// Output:
	// very slow algorithm ...
	// very fast algorithm
}
