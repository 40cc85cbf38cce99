package prototype_test

import (
	"fmt"

	"github.com/patternsmith/gofkit/prototype"
)

// ExampleRegistry stamps two memos out of one registered exemplar.
func ExampleRegistry() {
	reg := prototype.NewRegistry()
	reg.Register("memo", prototype.NewDocument("Untitled memo", "internal"))

	a, _ := reg.Clone("memo")
	b, _ := reg.Clone("memo")

	docA := a.(*prototype.Document)
	docB := b.(*prototype.Document)

	fmt.Println(docA.Title)
	fmt.Println(docB.Title)
	fmt.Println("distinct instances:", docA.ID != docB.ID)
	// Output:
	// Untitled memo
	// Untitled memo
	// distinct instances: true
}
