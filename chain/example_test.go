package chain_test

import (
	"fmt"

	"github.com/patternsmith/gofkit/chain"
)

// ExampleOfficer walks one request up the purchasing chain.
func ExampleOfficer() {
	president := chain.NewOfficer("president", 40_000, nil)
	director := chain.NewOfficer("director", 10_000, president)
	manager := chain.NewOfficer("manager", 5_000, director)

	for _, amount := range []int{500, 9_000, 35_000} {
		note, err := manager.Approve(chain.Request{Amount: amount, Purpose: "supplies"})
		if err != nil {
			fmt.Println("error:", err)

			continue
		}
		fmt.Println(note)
	}
	// Output:
	// manager will approve $500 for supplies
	// director will approve $9000 for supplies
	// president will approve $35000 for supplies
}
