package templatemethod

import (
	"fmt"
	"sort"
)

// Item is a named, weighted object.
type Item struct {
	Name   string
	Weight float64
}

// String renders the item for humans.
func (i Item) String() string {
	return fmt.Sprintf("%s with weight %v", i.Name, i.Weight)
}

// ByWeight supplies the steps sort.Sort's skeleton needs: items ordered
// by weight, with name as the tie-break.
type ByWeight []Item

// Len is the Len step of the skeleton.
func (s ByWeight) Len() int { return len(s) }

// Swap is the Swap step of the skeleton.
func (s ByWeight) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less orders by weight, then name.
func (s ByWeight) Less(i, j int) bool {
	if s[i].Weight != s[j].Weight {
		return s[i].Weight < s[j].Weight
	}

	return s[i].Name < s[j].Name
}

// SortByWeight runs the fixed skeleton over the concrete steps.
func SortByWeight(items []Item) {
	sort.Sort(ByWeight(items))
}
